package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}
}

func TestTaskIndexFromEnv(t *testing.T) {
	index, err := TaskIndexFromEnv(lookupFrom(map[string]string{"SLURM_ARRAY_TASK_ID": "1234"}))
	require.NoError(t, err)
	assert.Equal(t, 1234, index)

	index, err = TaskIndexFromEnv(lookupFrom(map[string]string{"PBS_ARRAYID": "42"}))
	require.NoError(t, err)
	assert.Equal(t, 42, index)

	index, err = TaskIndexFromEnv(lookupFrom(map[string]string{"SGE_TASK_ID": "7"}))
	require.NoError(t, err)
	assert.Equal(t, 7, index)
}

func TestTaskIndexFromEnvPrefersSlurm(t *testing.T) {
	env := map[string]string{
		"SLURM_ARRAY_TASK_ID": "1000",
		"PBS_ARRAYID":         "2000",
	}
	index, err := TaskIndexFromEnv(lookupFrom(env))
	require.NoError(t, err)
	assert.Equal(t, 1000, index)
}

func TestTaskIndexFromEnvErrors(t *testing.T) {
	var configErr *sweeperrors.ErrInvalidConfiguration

	_, err := TaskIndexFromEnv(lookupFrom(map[string]string{}))
	require.ErrorAs(t, err, &configErr)

	_, err = TaskIndexFromEnv(lookupFrom(map[string]string{"SLURM_ARRAY_TASK_ID": "twelve"}))
	require.ErrorAs(t, err, &configErr)
}
