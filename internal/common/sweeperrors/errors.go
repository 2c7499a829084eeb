// Package sweeperrors contains the error types shared by the sweep tools.
// Callers at the process boundary should use ExitCodeFromError to turn an
// error chain into the exit status of the invocation, so that handler
// failures propagate verbatim to the scheduler.
package sweeperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned whenever a configuration value would
// make the sweep produce wrong or undefined results, e.g. a non-positive
// column width or an unresolvable specs file. These errors are meant to be
// raised at startup, before any coordinate is computed.
type ErrInvalidConfiguration struct {
	Name    string      // Name of the configuration field, e.g., "columnWidth"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidConfiguration) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for configuration field %q", err.Value, err.Name)
	} else {
		return fmt.Sprintf("value %q is invalid for configuration field %q; %s", err.Value, err.Name, err.Message)
	}
}

// ErrHandlerFailure is returned when the external analysis handler exits
// non-zero or cannot be located or executed. ExitCode carries the status the
// invoking process must terminate with; handlers that could not be started
// at all report exit code 127, matching shell convention.
type ErrHandlerFailure struct {
	Command  string // The handler command that was invoked
	ExitCode int
	Message  string // An optional message, e.g., the underlying exec error
}

func (err *ErrHandlerFailure) Error() (s string) {
	s = fmt.Sprintf("handler %q failed with exit code %d", err.Command, err.ExitCode)
	if err.Message != "" {
		s = s + fmt.Sprintf("; %s", err.Message)
	}
	return
}

// ExitCodeFromError maps error types to process exit codes.
// Uses errors.As to look through the chain of errors, as opposed to just
// considering the topmost error in the chain.
//
// A nil error maps to 0. Handler failures propagate their own exit code.
// Everything else, including configuration errors, maps to 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var handlerErr *ErrHandlerFailure
	if ok := errors.As(err, &handlerErr); ok {
		return handlerErr.ExitCode
	}

	return 1
}
