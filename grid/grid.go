package grid

import "fmt"

// Point identifies a cell by column (X) and row (Y).
type Point struct {
	X int
	Y int
}

// Grid is a rectangular field of cells stored in one flat row-major slice.
// Row y occupies Cells()[y*W() : (y+1)*W()], so row-wise kernels can operate
// on contiguous memory.
type Grid[T any] struct {
	w     int
	h     int
	cells []T
}

// New returns a zeroed w by h grid.
func New[T any](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrEmptyGrid)
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}, nil
}

// FromRows builds a grid from rows, copying the input. Returns
// ErrNonRectangular when row lengths differ.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g, err := New[T](w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		copy(g.Row(y), row)
	}
	return g, nil
}

// W returns the grid width.
func (g *Grid[T]) W() int { return g.w }

// H returns the grid height.
func (g *Grid[T]) H() int { return g.h }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y).
func (g *Grid[T]) At(x, y int) (T, error) {
	var zero T
	if !g.InBounds(x, y) {
		return zero, fmt.Errorf("(%d,%d) in %dx%d: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	return g.cells[y*g.w+x], nil
}

// Set writes the cell at (x, y).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.cells[y*g.w+x] = v
	return nil
}

// Row returns row y as a sub-slice of the backing buffer.
func (g *Grid[T]) Row(y int) []T {
	return g.cells[y*g.w : (y+1)*g.w]
}

// Cells returns the backing slice (row-major).
func (g *Grid[T]) Cells() []T { return g.cells }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := &Grid[T]{w: g.w, h: g.h, cells: make([]T, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}
