package grid

import (
	"math/rand"
)

// MazeOptions tunes maze generation.
type MazeOptions struct {
	// Complexity is the mean island length as a ratio of maze size.
	Complexity float64
	// Density is the mean island count as a ratio of maze surface.
	Density float64
}

// DefaultMazeOptions mirrors the classic parameters.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{Complexity: 0.75, Density: 0.50}
}

// BuildMaze generates a maze on a w by h grid where 1 is wall and 0 is
// corridor. Dimensions are rounded down to the nearest odd size so walls can
// grow on the even lattice. Island starting points are drawn from a clamped
// normal distribution, which biases them toward the borders.
func BuildMaze(w, h int, opts MazeOptions, rng *rand.Rand) (*Grid[uint8], error) {
	// Only odd shapes.
	w = (w/2)*2 + 1
	h = (h/2)*2 + 1
	if w < 5 || h < 5 {
		return nil, ErrEmptyGrid
	}

	// Adjust complexity and density relative to maze size.
	nComplexity := int(opts.Complexity * float64(w+h))
	nDensity := int(opts.Density * float64(w*h))

	m, err := New[uint8](w, h)
	if err != nil {
		return nil, err
	}

	// Fill borders.
	for x := 0; x < w; x++ {
		m.cells[x] = 1
		m.cells[(h-1)*w+x] = 1
	}
	for y := 0; y < h; y++ {
		m.cells[y*w] = 1
		m.cells[y*w+w-1] = 1
	}

	clamp := func(v float64) float64 {
		if v < -0.5 {
			return -0.5
		}
		if v > 0.5 {
			return 0.5
		}
		return v
	}

	for i := 0; i < nDensity; i++ {
		// Starting point favors positions away from the center.
		x := int(float64(w) * (0.5 - clamp(rng.NormFloat64()*0.5)))
		y := int(float64(h) * (0.5 - clamp(rng.NormFloat64()*0.5)))
		x, y = (x/2)*2, (y/2)*2
		if x >= w || y >= h {
			continue
		}

		m.cells[y*w+x] = 1
		for j := 0; j < nComplexity; j++ {
			// Candidate steps of two cells, with the wall cell in between.
			type step struct{ wx, wy, nx, ny int }
			var neighbours []step
			if x > 1 {
				neighbours = append(neighbours, step{x - 1, y, x - 2, y})
			}
			if x < w-2 {
				neighbours = append(neighbours, step{x + 1, y, x + 2, y})
			}
			if y > 1 {
				neighbours = append(neighbours, step{x, y - 1, x, y - 2})
			}
			if y < h-2 {
				neighbours = append(neighbours, step{x, y + 1, x, y + 2})
			}
			if len(neighbours) == 0 {
				break
			}
			s := neighbours[rng.Intn(len(neighbours))]
			if m.cells[s.ny*w+s.nx] == 0 {
				m.cells[s.wy*w+s.wx] = 1
				m.cells[s.ny*w+s.nx] = 1
				x, y = s.nx, s.ny
			}
		}
	}
	return m, nil
}

// mazeGamma is the per-step discount of the value diffusion. Values decay as
// they spread, so the gradient always points back toward the start.
const mazeGamma = 0.99

// SolveMaze finds the shortest corridor path from start to goal with a
// Bellman-Ford value diffusion followed by gradient descent from the goal.
//
// The start cell is seeded with value 1 and each sweep propagates discounted
// values into the four-neighborhood of every corridor cell. Iteration stops
// once the goal receives a value; an unsolvable maze exhausts the sweep cap
// and returns ErrNoPath. The returned value field and path include both
// endpoints; the path runs from start to goal.
func SolveMaze(m *Grid[uint8], start, goal Point) (*Grid[float64], []Point, error) {
	w, h := m.w, m.h
	if !m.InBounds(start.X, start.Y) || !m.InBounds(goal.X, goal.Y) {
		return nil, nil, ErrOutOfBounds
	}
	if m.cells[start.Y*w+start.X] != 0 || m.cells[goal.Y*w+goal.X] != 0 {
		return nil, nil, ErrNoPath
	}

	g, err := New[float64](w, h)
	if err != nil {
		return nil, nil, err
	}
	g.cells[start.Y*w+start.X] = 1

	scratch := make([]float64, len(g.cells))

	// Every additional sweep extends the frontier by at least one cell, so
	// w*h sweeps suffice for any solvable maze.
	maxSweeps := w * h
	solved := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		copy(scratch, g.cells)
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				idx := y*w + x
				if m.cells[idx] != 0 {
					continue
				}
				best := scratch[idx]
				if v := mazeGamma * scratch[idx-w]; v > best {
					best = v
				}
				if v := mazeGamma * scratch[idx+w]; v > best {
					best = v
				}
				if v := mazeGamma * scratch[idx-1]; v > best {
					best = v
				}
				if v := mazeGamma * scratch[idx+1]; v > best {
					best = v
				}
				g.cells[idx] = best
			}
		}
		if g.cells[goal.Y*w+goal.X] > 0 {
			solved = true
			break
		}
	}
	if !solved {
		return nil, nil, ErrNoPath
	}

	// Descend the gradient from the goal back to the start.
	path := []Point{}
	x, y := goal.X, goal.Y
	for x != start.X || y != start.Y {
		path = append(path, Point{X: x, Y: y})
		if len(path) > w*h {
			return nil, nil, ErrNoPath
		}
		bestV := -1.0
		bestX, bestY := x, y
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := x+d[0], y+d[1]
			if !m.InBounds(nx, ny) {
				continue
			}
			if v := g.cells[ny*w+nx]; v > bestV {
				bestV = v
				bestX, bestY = nx, ny
			}
		}
		x, y = bestX, bestY
	}
	path = append(path, start)

	// Reverse so the path runs start to goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return g, path, nil
}
