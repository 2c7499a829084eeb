package runner

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sweepproject/sweeprunner/internal/sweep"
)

// AppendCoordinate writes the decomposed coordinate to an append-mode text
// sink before the handler is invoked. The sink is purely diagnostic; tasks
// running concurrently on different nodes may interleave lines.
func AppendCoordinate(path string, c sweep.Coordinate) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d %d\n", c.Row, c.Col)
	return errors.WithStack(err)
}
