package sweep

import (
	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

// Grid is an n-dimensional sweep shape, one size per iterated variable in
// declaration order. The last dimension is the fastest-moving one, so the
// two-dimensional case reduces to Decompose with width = Dims[len(Dims)-1].
type Grid struct {
	Dims []int
}

// NewGrid validates the dimension sizes and returns the grid.
func NewGrid(dims ...int) (Grid, error) {
	if len(dims) == 0 {
		return Grid{}, &sweeperrors.ErrInvalidConfiguration{
			Name:    "dims",
			Value:   dims,
			Message: "a sweep grid needs at least one dimension",
		}
	}
	for _, d := range dims {
		if d <= 0 {
			return Grid{}, &sweeperrors.ErrInvalidConfiguration{
				Name:    "dims",
				Value:   d,
				Message: "every grid dimension must be a positive integer",
			}
		}
	}
	return Grid{Dims: dims}, nil
}

// Size is the total number of points in the grid, i.e. the number of task
// indices one full sweep pass consumes.
func (g Grid) Size() int {
	size := 1
	for _, d := range g.Dims {
		size *= d
	}
	return size
}

// DecomposeAll maps a task index onto one sub-index per dimension, in
// declaration order, by repeated division from the fastest-moving dimension
// up. The mapping is the mixed-radix generalisation of Decompose and
// satisfies g.Compose(g.DecomposeAll(i)) == i for all 0 <= i < g.Size().
func (g Grid) DecomposeAll(index int) ([]int, error) {
	if index < 0 {
		return nil, &sweeperrors.ErrInvalidConfiguration{
			Name:    "taskIndex",
			Value:   index,
			Message: "task index must be non-negative",
		}
	}
	if index >= g.Size() {
		return nil, &sweeperrors.ErrInvalidConfiguration{
			Name:    "taskIndex",
			Value:   index,
			Message: "task index is beyond the end of the sweep grid",
		}
	}
	idxs := make([]int, len(g.Dims))
	for i := len(g.Dims) - 1; i >= 0; i-- {
		idxs[i] = index % g.Dims[i]
		index = index / g.Dims[i]
	}
	return idxs, nil
}

// Compose maps per-dimension sub-indices back onto the flat task index.
func (g Grid) Compose(idxs []int) int {
	index := 0
	for i, d := range g.Dims {
		index = index*d + idxs[i]
	}
	return index
}
