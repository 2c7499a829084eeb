package sweeperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":                            {nil, 0},
		"ErrHandlerFailure":              {&ErrHandlerFailure{Command: "python", ExitCode: 3}, 3},
		"pkg.Error => ErrHandlerFailure": {errors.WithMessage(&ErrHandlerFailure{Command: "python", ExitCode: 127}, "foo"), 127},
		"ErrInvalidConfiguration":        {&ErrInvalidConfiguration{Name: "columnWidth", Value: 0}, 1},
		"pkg.Error":                      {errors.New("foo"), 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeFromError(tc.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := &ErrInvalidConfiguration{Name: "columnWidth", Value: -5, Message: "must be positive"}
	assert.Contains(t, err.Error(), "columnWidth")
	assert.Contains(t, err.Error(), "must be positive")

	handlerErr := &ErrHandlerFailure{Command: "python", ExitCode: 3}
	assert.Contains(t, handlerErr.Error(), "exit code 3")
}
