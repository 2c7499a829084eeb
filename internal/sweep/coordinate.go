// Package sweep maps array-task indices onto parameter-sweep grid
// coordinates. The mapping is a pure function of the task index and the grid
// shape; nothing in this package touches the environment or launches
// processes.
package sweep

import (
	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
)

// DefaultColumnWidth is the width of the fastest-moving sweep dimension used
// when no specs file or configuration overrides it.
const DefaultColumnWidth = 200

// Coordinate is the position of one task within a two-dimensional sweep.
// Row indexes the slow-moving variable, Col the fast-moving one.
type Coordinate struct {
	Row int
	Col int
}

// Decompose maps a task index onto a grid coordinate over a fixed column
// width, such that index == Row*width + Col and 0 <= Col < width.
// Successive indices walk the columns of a row before moving to the next row,
// so a contiguous index range covers the grid without collisions.
func Decompose(index int, width int) (Coordinate, error) {
	if width <= 0 {
		return Coordinate{}, &sweeperrors.ErrInvalidConfiguration{
			Name:    "columnWidth",
			Value:   width,
			Message: "column width must be a positive integer",
		}
	}
	if index < 0 {
		return Coordinate{}, &sweeperrors.ErrInvalidConfiguration{
			Name:    "taskIndex",
			Value:   index,
			Message: "task index must be non-negative",
		}
	}
	return Coordinate{Row: index / width, Col: index % width}, nil
}

// Compose is the inverse of Decompose. It does not validate its arguments;
// it exists to state the round-trip identity in one place.
func Compose(c Coordinate, width int) int {
	return c.Row*width + c.Col
}
