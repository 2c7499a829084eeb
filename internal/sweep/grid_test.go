package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

func TestNewGridValidation(t *testing.T) {
	var configErr *sweeperrors.ErrInvalidConfiguration

	_, err := NewGrid()
	require.ErrorAs(t, err, &configErr)

	_, err = NewGrid(3, 0, 2)
	require.ErrorAs(t, err, &configErr)

	g, err := NewGrid(51, 200)
	require.NoError(t, err)
	assert.Equal(t, 51*200, g.Size())
}

func TestGridDecomposeAll(t *testing.T) {
	g, err := NewGrid(3, 4, 5)
	require.NoError(t, err)

	idxs, err := g.DecomposeAll(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, idxs)

	// The last dimension moves fastest.
	idxs, err = g.DecomposeAll(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, idxs)

	idxs, err = g.DecomposeAll(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, idxs)

	idxs, err = g.DecomposeAll(g.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, idxs)
}

func TestGridRoundTrip(t *testing.T) {
	g, err := NewGrid(2, 7, 3)
	require.NoError(t, err)
	for index := 0; index < g.Size(); index++ {
		idxs, err := g.DecomposeAll(index)
		require.NoError(t, err)
		assert.Equal(t, index, g.Compose(idxs))
	}
}

func TestGridRejectsOutOfRangeIndex(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)

	var configErr *sweeperrors.ErrInvalidConfiguration
	_, err = g.DecomposeAll(6)
	require.ErrorAs(t, err, &configErr)
	_, err = g.DecomposeAll(-1)
	require.ErrorAs(t, err, &configErr)
}

func TestGridMatchesTwoDimensionalDecompose(t *testing.T) {
	g, err := NewGrid(51, 200)
	require.NoError(t, err)
	for _, index := range []int{0, 199, 200, 1000, 1234, 9999, 10000} {
		idxs, err := g.DecomposeAll(index)
		require.NoError(t, err)
		c, err := Decompose(index, 200)
		require.NoError(t, err)
		assert.Equal(t, []int{c.Row, c.Col}, idxs)
	}
}
