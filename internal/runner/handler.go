package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
	"github.com/sweepproject/sweeprunner/internal/sweep"
)

// Handler is the external analysis program one sweep task delegates to.
// Implementations receive the opaque spec-file identifier and the decomposed
// coordinate and return an ErrHandlerFailure when the analysis fails; the
// caller propagates that failure as its own exit status. Handlers are never
// retried, re-submission is the scheduler's job.
type Handler interface {
	Run(ctx context.Context, specsFile string, c sweep.Coordinate) error
}

// ExitCodeCommandNotFound is reported when the handler command cannot be
// located or started at all, matching shell convention.
const ExitCodeCommandNotFound = 127

// ExecHandler runs the analysis program as a child process:
//
//	Command Args... <specs-file-id> <row> <col>
//
// Stdout and stderr are inherited unless overridden, so the handler's own
// output lands wherever the scheduler redirects the task's streams.
type ExecHandler struct {
	Command string
	Args    []string

	Stdout io.Writer
	Stderr io.Writer
}

func NewExecHandler(command string, args ...string) *ExecHandler {
	return &ExecHandler{
		Command: command,
		Args:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func (h *ExecHandler) Run(ctx context.Context, specsFile string, c sweep.Coordinate) error {
	args := make([]string, 0, len(h.Args)+3)
	args = append(args, h.Args...)
	args = append(args, specsFile, strconv.Itoa(c.Row), strconv.Itoa(c.Col))

	cmd := exec.CommandContext(ctx, h.Command, args...)
	cmd.Stdout = h.Stdout
	cmd.Stderr = h.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return &sweeperrors.ErrHandlerFailure{
			Command:  h.Command,
			ExitCode: exitErr.ExitCode(),
		}
	}
	return &sweeperrors.ErrHandlerFailure{
		Command:  h.Command,
		ExitCode: ExitCodeCommandNotFound,
		Message:  err.Error(),
	}
}
