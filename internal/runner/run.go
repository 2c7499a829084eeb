// Package runner executes one sweep task: it decomposes the task index into
// a grid coordinate and delegates to the external analysis handler,
// propagating the handler's exit status. Each invocation is single-shot and
// independent of every other task in the array.
package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
	"github.com/sweepproject/sweeprunner/internal/runner/configuration"
	"github.com/sweepproject/sweeprunner/internal/sweep"
	"github.com/sweepproject/sweeprunner/internal/sweep/specs"
)

// TaskRun records one invocation: which task index was run, the coordinate
// it decomposed to, and how the handler exited. The record lives for the
// duration of the invocation only; durable output belongs to the handler.
type TaskRun struct {
	Id         string
	TaskIndex  int
	SpecsFile  string
	Coordinate sweep.Coordinate
	Started    time.Time
	Finished   time.Time
	ExitCode   int
}

// Runner wires the decomposition to the handler according to one validated
// configuration.
type Runner struct {
	config  *configuration.SweepConfig
	handler Handler
}

// New returns a Runner invoking the configured handler command. The
// configuration must already be validated.
func New(config *configuration.SweepConfig) *Runner {
	return &Runner{
		config:  config,
		handler: NewExecHandler(config.Handler.Command, config.Handler.Args...),
	}
}

// NewWithHandler returns a Runner delegating to the given handler, letting
// tests exercise the orchestration without launching processes.
func NewWithHandler(config *configuration.SweepConfig, handler Handler) *Runner {
	return &Runner{config: config, handler: handler}
}

// Run executes the sweep task for one index. The returned TaskRun is
// populated also on failure, so callers can report the exit code; the error
// carries the cause.
func (r *Runner) Run(ctx context.Context, index int) (*TaskRun, error) {
	run := &TaskRun{
		Id:        uuid.NewString(),
		TaskIndex: index,
		SpecsFile: r.config.SpecsFile,
		Started:   time.Now(),
	}

	if err := r.config.CheckIndex(index); err != nil {
		return run, err
	}

	width, err := r.columnWidth()
	if err != nil {
		return run, err
	}

	coordinate, err := sweep.Decompose(index, width)
	if err != nil {
		return run, err
	}
	run.Coordinate = coordinate

	entry := log.WithFields(log.Fields{
		"runId":     run.Id,
		"taskIndex": index,
		"specsFile": run.SpecsFile,
		"row":       coordinate.Row,
		"col":       coordinate.Col,
	})
	entry.Info("running sweep task")

	if r.config.OutputFile != "" {
		if err := AppendCoordinate(r.config.OutputFile, coordinate); err != nil {
			// The sink is diagnostic only; a broken sink must not fail the task.
			entry.Warnf("could not append coordinate to %s: %v", r.config.OutputFile, err)
		}
	}

	err = r.handler.Run(ctx, r.config.SpecsFile, coordinate)
	run.Finished = time.Now()
	if err != nil {
		entry.WithError(err).Error("sweep task failed")
		run.ExitCode = sweeperrors.ExitCodeFromError(err)
		return run, err
	}
	entry.Info("sweep task succeeded")
	return run, nil
}

// columnWidth prefers the width declared by the specs file over the
// configured constant. When no data directory is configured the spec-file
// identifier stays opaque and the constant applies.
func (r *Runner) columnWidth() (int, error) {
	if r.config.DataDir == "" {
		return r.config.ColumnWidth, nil
	}
	s, err := specs.Load(r.config.DataDir, r.config.SpecsFile)
	if err != nil {
		return 0, err
	}
	if len(s.IterVars) == 0 {
		return r.config.ColumnWidth, nil
	}
	return s.ColumnWidth()
}
