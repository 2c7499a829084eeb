package sweepctl

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/sweepproject/sweeprunner/internal/sweep/specs"
)

// SweepPlan is the expanded shape of one sweep: which variables are
// iterated, how many points each contributes, and how many tasks one full
// pass needs.
type SweepPlan struct {
	SpecsFile   string         `yaml:"specsFile"`
	Variables   []PlanVariable `yaml:"variables"`
	TotalPoints int            `yaml:"totalPoints"`
	ColumnWidth int            `yaml:"columnWidth"`
}

type PlanVariable struct {
	Name    string    `yaml:"name"`
	Scaling string    `yaml:"scaling"`
	Points  int       `yaml:"points"`
	Values  []float64 `yaml:"values"`
}

// Plan loads the configured specs file and writes the sweep plan to the app
// output, as aligned text or as yaml.
func (a *App) Plan(outputYaml bool) error {
	plan, err := a.buildPlan()
	if err != nil {
		return err
	}

	if outputYaml {
		out, err := yaml.Marshal(plan)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprint(a.Out, string(out))
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 1, 1, 2, ' ', 0)
	fmt.Fprintf(w, "Specs file:\t%s\n", plan.SpecsFile)
	fmt.Fprintf(w, "Total points:\t%d\n", plan.TotalPoints)
	fmt.Fprintf(w, "Column width:\t%d\n", plan.ColumnWidth)
	fmt.Fprintf(w, "Variables:\n")
	for _, v := range plan.Variables {
		fmt.Fprintf(w, "  %s\t%s\t%d points\t[%g .. %g]\n", v.Name, v.Scaling, v.Points, v.Values[0], v.Values[len(v.Values)-1])
	}
	return w.Flush()
}

func (a *App) buildPlan() (*SweepPlan, error) {
	s, err := specs.Load(a.Config.DataDir, a.Config.SpecsFile)
	if err != nil {
		return nil, err
	}
	grid, err := s.Grid()
	if err != nil {
		return nil, err
	}
	width, err := s.ColumnWidth()
	if err != nil {
		return nil, err
	}

	plan := &SweepPlan{
		SpecsFile:   a.Config.SpecsFile,
		TotalPoints: grid.Size(),
		ColumnWidth: width,
	}
	for _, v := range s.IterVars {
		plan.Variables = append(plan.Variables, PlanVariable{
			Name:    v.Name,
			Scaling: v.Scaling,
			Points:  v.N,
			Values:  v.Values(),
		})
	}
	return plan, nil
}
