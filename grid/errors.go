package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid dimension that is not positive.
	ErrEmptyGrid = errors.New("grid: dimensions must be at least 1x1")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: cell coordinates out of bounds")
	// ErrNoPath indicates a maze with no route between the endpoints.
	ErrNoPath = errors.New("grid: no path between start and goal")
)
