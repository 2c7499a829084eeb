// Package sweepctl is the application behind the sweepctl command-line tool.
// It inspects sweep specification files and runs laptop-scale sweeps without
// a cluster scheduler; the per-task shim for scheduler-launched array jobs is
// sweeprun.
package sweepctl

import (
	"io"
	"os"

	"github.com/sweepproject/sweeprunner/internal/runner/configuration"
)

type App struct {
	Config *configuration.SweepConfig

	// Out is the destination for command output; os.Stdout by default.
	// Tests substitute a buffer.
	Out io.Writer
}

func New() *App {
	return &App{
		Config: &configuration.SweepConfig{},
		Out:    os.Stdout,
	}
}
