package configuration

import (
	"github.com/hashicorp/go-multierror"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

// SweepConfig is the deploy-time configuration shared by sweeprun and
// sweepctl. Everything here is fixed before the array job is submitted;
// nothing is derived from the task index.
type SweepConfig struct {
	// Identifier of the sweep specification file, resolved to
	// <DataDir>/specs/<SpecsFile>.txt. Passed through to the handler
	// unchanged as its first argument.
	SpecsFile string
	DataDir   string

	// Width of the fastest-moving sweep dimension. When a specs file is
	// resolvable its declared column width takes precedence.
	ColumnWidth int

	Handler HandlerConfig

	// Append-mode sink for the decomposed coordinates, for human diagnosis.
	// Empty disables the sink.
	OutputFile string

	// Inclusive task-index range of the array job. When both are zero no
	// range check is performed and any non-negative index is accepted.
	FirstTaskIndex int
	LastTaskIndex  int

	// Number of tasks sweepctl run executes concurrently.
	Parallelism int
}

// HandlerConfig describes the external analysis program. The handler is
// invoked as: Command Args... <specs-file-id> <row> <col>.
type HandlerConfig struct {
	Command string
	Args    []string
}

// Validate reports every configuration violation at once, so a bad deploy
// fails at startup with the full list rather than one error per restart.
func (c *SweepConfig) Validate() error {
	var result *multierror.Error

	if c.SpecsFile == "" {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "specsFile",
			Value:   c.SpecsFile,
			Message: "spec-file identifier must not be empty",
		})
	}
	if c.ColumnWidth <= 0 {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "columnWidth",
			Value:   c.ColumnWidth,
			Message: "column width must be a positive integer",
		})
	}
	if c.Handler.Command == "" {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "handler.command",
			Value:   c.Handler.Command,
			Message: "handler command must not be empty",
		})
	}
	if c.RangeDeclared() && c.LastTaskIndex < c.FirstTaskIndex {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "lastTaskIndex",
			Value:   c.LastTaskIndex,
			Message: "task-index range is empty",
		})
	}
	if c.FirstTaskIndex < 0 {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "firstTaskIndex",
			Value:   c.FirstTaskIndex,
			Message: "task index must be non-negative",
		})
	}
	if c.Parallelism < 0 {
		result = multierror.Append(result, &sweeperrors.ErrInvalidConfiguration{
			Name:    "parallelism",
			Value:   c.Parallelism,
			Message: "parallelism must not be negative",
		})
	}

	return result.ErrorOrNil()
}

// RangeDeclared reports whether the configuration declares the array job's
// inclusive task-index range. An undeclared range disables range checking;
// the scheduler's array declaration is then the only gate.
func (c *SweepConfig) RangeDeclared() bool {
	return c.FirstTaskIndex != 0 || c.LastTaskIndex != 0
}

// CheckIndex validates a resolved task index against the declared range.
func (c *SweepConfig) CheckIndex(index int) error {
	if index < 0 {
		return &sweeperrors.ErrInvalidConfiguration{
			Name:    "taskIndex",
			Value:   index,
			Message: "task index must be non-negative",
		}
	}
	if c.RangeDeclared() && (index < c.FirstTaskIndex || index > c.LastTaskIndex) {
		return &sweeperrors.ErrInvalidConfiguration{
			Name:    "taskIndex",
			Value:   index,
			Message: "task index is outside the declared array range",
		}
	}
	return nil
}
