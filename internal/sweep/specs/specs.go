// Package specs reads sweep specification files. A specs file declares the
// iterated variables of a parameter sweep together with fixed variables,
// parameter overrides and relative variables, one declaration per line:
//
//	iter_var   mu_Ss0    lin  1    10    51
//	iter_var   epsilon   lin  0    20    200
//	fixed_var  slkd      2
//	param      nX        3
//	rel_var    sigmaSs   mu_Ss0/5
//
// The iterated variables appear in declaration order and their point counts
// define the sweep grid; the last one moves fastest. Relative variable
// expressions are opaque to this package and are handed to the analysis
// handler unevaluated.
package specs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
	"github.com/sweepproject/sweeprunner/internal/sweep"
)

const (
	ScalingLinear      = "lin"
	ScalingExponential = "exp"

	defaultExpBase = 10
)

// IterVar is one iterated variable of the sweep: N points spanning [Lo, Hi],
// either directly (lin) or as Base raised to that range (exp).
type IterVar struct {
	Name    string
	Scaling string
	Lo      float64
	Hi      float64
	N       int
	Base    float64
}

// Values expands the variable into its value ladder.
func (v IterVar) Values() []float64 {
	points := linspace(v.Lo, v.Hi, v.N)
	if v.Scaling == ScalingExponential {
		for i, p := range points {
			points[i] = math.Pow(v.Base, p)
		}
	}
	return points
}

// Specs is the parsed content of one sweep specification file.
type Specs struct {
	IterVars  []IterVar
	FixedVars map[string]float64
	Params    map[string]int
	RelVars   map[string]string
}

// Grid returns the sweep grid declared by the iterated variables.
func (s *Specs) Grid() (sweep.Grid, error) {
	dims := make([]int, 0, len(s.IterVars))
	for _, v := range s.IterVars {
		dims = append(dims, v.N)
	}
	return sweep.NewGrid(dims...)
}

// ColumnWidth is the size of the fastest-moving dimension, i.e. the divisor
// a two-dimensional sweep decomposes its task index by.
func (s *Specs) ColumnWidth() (int, error) {
	if len(s.IterVars) == 0 {
		return 0, &sweeperrors.ErrInvalidConfiguration{
			Name:    "specsFile",
			Value:   "",
			Message: "specs file declares no iterated variables",
		}
	}
	return s.IterVars[len(s.IterVars)-1].N, nil
}

// Resolve maps a spec-file identifier onto its path under dataDir. The
// identifier is opaque everywhere else; only here does it touch the
// filesystem. An identifier that does not resolve to an existing file is a
// configuration error, reported before any work is done.
func Resolve(dataDir string, id string) (string, error) {
	if id == "" {
		return "", &sweeperrors.ErrInvalidConfiguration{
			Name:    "specsFile",
			Value:   id,
			Message: "spec-file identifier must not be empty",
		}
	}
	path := filepath.Join(dataDir, "specs", id+".txt")
	if _, err := os.Stat(path); err != nil {
		return "", &sweeperrors.ErrInvalidConfiguration{
			Name:    "specsFile",
			Value:   id,
			Message: fmt.Sprintf("no specs file at %s", path),
		}
	}
	return path, nil
}

// Load resolves and parses the specs file for the given identifier.
func Load(dataDir string, id string) (*Specs, error) {
	path, err := Resolve(dataDir, id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	s, err := Parse(f)
	return s, errors.WithMessagef(err, "failed to parse specs file %s", path)
}

// Parse reads specs declarations. Blank lines and lines starting with # are
// skipped; unknown declaration types are an error rather than silently
// ignored.
func Parse(r io.Reader) (*Specs, error) {
	s := &Specs{
		FixedVars: map[string]float64{},
		Params:    map[string]int{},
		RelVars:   map[string]string{},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.Errorf("line %d: declaration needs a type, a name and a value", lineNo)
		}
		varType, varName := fields[0], fields[1]

		switch varType {
		case "iter_var":
			v, err := parseIterVar(varName, fields[2:])
			if err != nil {
				return nil, errors.WithMessagef(err, "line %d", lineNo)
			}
			s.IterVars = append(s.IterVars, v)
		case "fixed_var":
			value, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, errors.Errorf("line %d: fixed_var %s: %v", lineNo, varName, err)
			}
			s.FixedVars[varName] = value
		case "param":
			value, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Errorf("line %d: param %s: %v", lineNo, varName, err)
			}
			s.Params[varName] = value
		case "rel_var":
			s.RelVars[varName] = strings.Join(fields[2:], " ")
		default:
			return nil, errors.Errorf("line %d: unknown declaration type %q", lineNo, varType)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}

func parseIterVar(name string, fields []string) (IterVar, error) {
	if len(fields) < 4 {
		return IterVar{}, errors.Errorf("iter_var %s: need scaling, lo, hi and point count", name)
	}
	scaling := fields[0]
	if scaling != ScalingLinear && scaling != ScalingExponential {
		return IterVar{}, errors.Errorf("iter_var %s: unknown scaling %q", name, scaling)
	}
	lo, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return IterVar{}, errors.Errorf("iter_var %s: lo: %v", name, err)
	}
	hi, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return IterVar{}, errors.Errorf("iter_var %s: hi: %v", name, err)
	}
	n, err := strconv.Atoi(fields[3])
	if err != nil {
		return IterVar{}, errors.Errorf("iter_var %s: point count: %v", name, err)
	}
	if n <= 0 {
		return IterVar{}, errors.Errorf("iter_var %s: point count must be positive, got %d", name, n)
	}
	base := float64(defaultExpBase)
	if scaling == ScalingExponential && len(fields) > 4 {
		base, err = strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return IterVar{}, errors.Errorf("iter_var %s: base: %v", name, err)
		}
	}
	return IterVar{Name: name, Scaling: scaling, Lo: lo, Hi: hi, N: n, Base: base}, nil
}

// linspace returns n evenly spaced points from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	points := make([]float64, n)
	if n == 1 {
		points[0] = lo
		return points
	}
	step := (hi - lo) / float64(n-1)
	for i := range points {
		points[i] = lo + float64(i)*step
	}
	return points
}
