// Package grid provides a flat row-major 2D grid and the grid-based kernels
// built on it: Conway's Game of Life and maze generation/solving.
//
// What:
//
//   - Grid[T] wraps one contiguous []T with a width and height; rows are
//     plain sub-slices, so whole-row operations vectorize over the backing
//     buffer instead of iterating cell by cell.
//   - Life steps a Game of Life board by summing eight shifted interior
//     windows row-wise, then applying the birth/survival rules as masks.
//   - BuildMaze grows wall islands on an odd-sized grid; SolveMaze runs a
//     Bellman-Ford value diffusion with a discount factor and extracts the
//     shortest path by gradient descent.
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is not positive.
//   - ErrNonRectangular: input rows differ in length.
//   - ErrOutOfBounds: cell coordinates outside the grid.
//   - ErrNoPath: the maze has no route between the endpoints.
package grid
