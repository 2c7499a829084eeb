package runner

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

// Environment variables array-job schedulers use to hand each task its index,
// in lookup order.
var taskIndexEnvVars = []string{
	"SLURM_ARRAY_TASK_ID",
	"PBS_ARRAYID",
	"SGE_TASK_ID",
}

// TaskIndexFromEnv resolves the task index from the scheduler's environment.
// The lookup function is os.LookupEnv in production; tests inject their own.
// The index is resolved once at entry and passed around explicitly from then
// on, the sweep logic itself never reads the environment.
func TaskIndexFromEnv(lookup func(string) (string, bool)) (int, error) {
	for _, name := range taskIndexEnvVars {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		index, err := strconv.Atoi(value)
		if err != nil {
			return 0, errors.WithStack(&sweeperrors.ErrInvalidConfiguration{
				Name:    name,
				Value:   value,
				Message: "task index must be an integer",
			})
		}
		return index, nil
	}
	return 0, errors.WithStack(&sweeperrors.ErrInvalidConfiguration{
		Name:    "taskIndex",
		Value:   "",
		Message: "no --index flag and no array-task environment variable set",
	})
}
