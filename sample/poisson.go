// Package sample generates Poisson-disk point distributions with Bridson's
// algorithm (Fast Poisson Disk Sampling in Arbitrary Dimensions, SIGGRAPH
// 2007).
//
// Points are at least radius apart and fill the domain blue-noise style. A
// background grid with cells of radius/sqrt(2) holds at most one point per
// cell, so neighborhood rejection tests touch a constant number of cells.
package sample

import (
	"errors"
	"math"
	"math/rand"
)

// ErrBadDomain indicates a non-positive domain or radius.
var ErrBadDomain = errors.New("sample: width, height, and radius must be positive")

// DefaultCandidates is the classic candidate budget per active point.
const DefaultCandidates = 30

// Point is a 2D sample position.
type Point struct {
	X float64
	Y float64
}

// PoissonDisk fills the width by height rectangle with points spaced at least
// radius apart, trying k candidates around each active point (use
// DefaultCandidates when in doubt).
func PoissonDisk(width, height, radius float64, k int, rng *rand.Rand) ([]Point, error) {
	if width <= 0 || height <= 0 || radius <= 0 {
		return nil, ErrBadDomain
	}
	if k <= 0 {
		k = DefaultCandidates
	}

	// One point per grid cell; the cell diagonal equals the radius so two
	// points can never share a cell.
	cellsize := radius / math.Sqrt2
	cols := int(math.Ceil(width / cellsize))
	rows := int(math.Ceil(height / cellsize))

	grid := make([]int, cols*rows) // index+1 into points, 0 = empty
	points := make([]Point, 0, cols*rows/2)
	active := []int{}

	r2 := radius * radius

	cellOf := func(p Point) (int, int) {
		return int(p.X / cellsize), int(p.Y / cellsize)
	}

	farFromNeighbors := func(p Point) bool {
		ci, cj := cellOf(p)
		if grid[cj*cols+ci] != 0 {
			return false
		}
		i0, i1 := max(ci-2, 0), min(ci+3, cols)
		j0, j1 := max(cj-2, 0), min(cj+3, rows)
		for j := j0; j < j1; j++ {
			for i := i0; i < i1; i++ {
				idx := grid[j*cols+i]
				if idx == 0 {
					continue
				}
				q := points[idx-1]
				dx, dy := p.X-q.X, p.Y-q.Y
				if dx*dx+dy*dy < r2 {
					return false
				}
			}
		}
		return true
	}

	addPoint := func(p Point) {
		points = append(points, p)
		active = append(active, len(points)-1)
		ci, cj := cellOf(p)
		grid[cj*cols+ci] = len(points)
	}

	addPoint(Point{X: rng.Float64() * width, Y: rng.Float64() * height})

	for len(active) > 0 {
		// Pick a random active point and retire it after its candidates.
		ai := rng.Intn(len(active))
		p := points[active[ai]]
		active[ai] = active[len(active)-1]
		active = active[:len(active)-1]

		for c := 0; c < k; c++ {
			// Candidate in the annulus [radius, 2*radius) around p.
			r := radius + rng.Float64()*radius
			theta := rng.Float64() * 2 * math.Pi
			q := Point{X: p.X + r*math.Sin(theta), Y: p.Y + r*math.Cos(theta)}
			if q.X < 0 || q.X >= width || q.Y < 0 || q.Y >= height {
				continue
			}
			if farFromNeighbors(q) {
				addPoint(q)
			}
		}
	}
	return points, nil
}
