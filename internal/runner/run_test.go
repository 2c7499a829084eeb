package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
	"github.com/sweepproject/sweeprunner/internal/runner/configuration"
	"github.com/sweepproject/sweeprunner/internal/sweep"
)

type fakeHandler struct {
	specsFile  string
	coordinate sweep.Coordinate
	calls      int
	err        error
}

func (h *fakeHandler) Run(ctx context.Context, specsFile string, c sweep.Coordinate) error {
	h.calls++
	h.specsFile = specsFile
	h.coordinate = c
	return h.err
}

func testConfig() *configuration.SweepConfig {
	return &configuration.SweepConfig{
		SpecsFile:   "example",
		ColumnWidth: 200,
		Handler:     configuration.HandlerConfig{Command: "true"},
	}
}

func TestRunInvokesHandlerWithDecomposedCoordinate(t *testing.T) {
	handler := &fakeHandler{}
	r := NewWithHandler(testConfig(), handler)

	run, err := r.Run(context.Background(), 1234)
	require.NoError(t, err)

	assert.Equal(t, 1, handler.calls)
	assert.Equal(t, "example", handler.specsFile)
	assert.Equal(t, sweep.Coordinate{Row: 6, Col: 34}, handler.coordinate)
	assert.Equal(t, sweep.Coordinate{Row: 6, Col: 34}, run.Coordinate)
	assert.Equal(t, 0, run.ExitCode)
	assert.NotEmpty(t, run.Id)
}

func TestRunPropagatesHandlerFailure(t *testing.T) {
	handler := &fakeHandler{err: &sweeperrors.ErrHandlerFailure{Command: "true", ExitCode: 3}}
	r := NewWithHandler(testConfig(), handler)

	run, err := r.Run(context.Background(), 1000)
	require.Error(t, err)
	assert.Equal(t, 3, run.ExitCode)
	assert.Equal(t, 3, sweeperrors.ExitCodeFromError(err))
}

func TestRunIsSingleShot(t *testing.T) {
	handler := &fakeHandler{err: &sweeperrors.ErrHandlerFailure{Command: "true", ExitCode: 1}}
	r := NewWithHandler(testConfig(), handler)

	_, err := r.Run(context.Background(), 1000)
	require.Error(t, err)
	assert.Equal(t, 1, handler.calls)
}

func TestRunChecksDeclaredRange(t *testing.T) {
	config := testConfig()
	config.FirstTaskIndex = 1000
	config.LastTaskIndex = 10000
	handler := &fakeHandler{}
	r := NewWithHandler(config, handler)

	var configErr *sweeperrors.ErrInvalidConfiguration
	_, err := r.Run(context.Background(), 999)
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, 0, handler.calls)
}

func TestRunAppendsCoordinateToSink(t *testing.T) {
	config := testConfig()
	config.OutputFile = filepath.Join(t.TempDir(), "out.txt")
	r := NewWithHandler(config, &fakeHandler{})

	_, err := r.Run(context.Background(), 1234)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), 1235)
	require.NoError(t, err)

	content, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "6 34\n6 35\n", string(content))
}

func TestRunUsesSpecsFileColumnWidth(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "specs"), 0o755))
	specsContent := "iter_var mu_Ss0 lin 1 10 51\niter_var epsilon lin 0 20 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "specs", "example.txt"), []byte(specsContent), 0o644))

	config := testConfig()
	config.DataDir = dataDir
	handler := &fakeHandler{}
	r := NewWithHandler(config, handler)

	// Width 100 from the specs file wins over the configured 200.
	_, err := r.Run(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, sweep.Coordinate{Row: 12, Col: 34}, handler.coordinate)
}

func TestRunFailsOnUnresolvableSpecsFile(t *testing.T) {
	config := testConfig()
	config.DataDir = t.TempDir()
	r := NewWithHandler(config, &fakeHandler{})

	var configErr *sweeperrors.ErrInvalidConfiguration
	_, err := r.Run(context.Background(), 1234)
	require.ErrorAs(t, err, &configErr)
}
