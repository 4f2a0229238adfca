// Package fluid implements Jos Stam's stable fluid solver (Real-Time Fluid
// Dynamics for Games, 2003) on a square grid.
//
// The solver carries a density field and a velocity field on an N by N
// interior wrapped in a one-cell boundary ring. Each step adds the pending
// sources, diffuses with Gauss-Seidel relaxation, advects semi-Lagrangially
// by tracing cell centers backward through the velocity field, and projects
// the velocity to keep it mass-conserving. All fields are flat row-major
// slices of size (N+2)^2.
package fluid

import "errors"

// ErrBadSize indicates an interior smaller than one cell.
var ErrBadSize = errors.New("fluid: interior size must be at least 1")

// relaxationIters is the fixed Gauss-Seidel iteration count; enough for
// visually stable results at interactive rates.
const relaxationIters = 20

// Solver holds the simulation state.
type Solver struct {
	N    int     // interior cells per side
	Diff float64 // density diffusion rate
	Visc float64 // kinematic viscosity

	U, V, Dens []float64 // current fields, (N+2)^2 each

	uSrc, vSrc, densSrc []float64 // pending sources, consumed by Step
	scratch             []float64
	scratch2            []float64
}

// NewSolver allocates a solver with an n by n interior.
func NewSolver(n int, diff, visc float64) (*Solver, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	size := (n + 2) * (n + 2)
	return &Solver{
		N:    n,
		Diff: diff,
		Visc: visc,

		U:    make([]float64, size),
		V:    make([]float64, size),
		Dens: make([]float64, size),

		uSrc:     make([]float64, size),
		vSrc:     make([]float64, size),
		densSrc:  make([]float64, size),
		scratch:  make([]float64, size),
		scratch2: make([]float64, size),
	}, nil
}

// idx addresses cell (i, j); the interior is 1..N on both axes.
func (s *Solver) idx(i, j int) int { return i + (s.N+2)*j }

// AddDensity queues a density source at interior cell (i, j) for the next
// Step. Out-of-range cells are ignored.
func (s *Solver) AddDensity(i, j int, amount float64) {
	if i < 1 || i > s.N || j < 1 || j > s.N {
		return
	}
	s.densSrc[s.idx(i, j)] += amount
}

// AddVelocity queues a velocity source at interior cell (i, j).
func (s *Solver) AddVelocity(i, j int, du, dv float64) {
	if i < 1 || i > s.N || j < 1 || j > s.N {
		return
	}
	s.uSrc[s.idx(i, j)] += du
	s.vSrc[s.idx(i, j)] += dv
}

// Step advances the simulation by dt, consuming all queued sources.
func (s *Solver) Step(dt float64) {
	s.velStep(dt)
	s.densStep(dt)
	clear(s.uSrc)
	clear(s.vSrc)
	clear(s.densSrc)
}

// TotalDensity returns the summed density, a conserved quantity apart from
// explicit sources.
func (s *Solver) TotalDensity() float64 {
	total := 0.0
	for _, v := range s.Dens {
		total += v
	}
	return total
}

// setBnd enforces the solid-box boundary. b=1 mirrors the horizontal
// velocity on vertical walls, b=2 the vertical velocity on horizontal walls,
// b=0 continues scalar fields into the ring.
func (s *Solver) setBnd(b int, x []float64) {
	n := s.N
	for i := 1; i <= n; i++ {
		if b == 1 {
			x[s.idx(0, i)] = -x[s.idx(1, i)]
			x[s.idx(n+1, i)] = -x[s.idx(n, i)]
		} else {
			x[s.idx(0, i)] = x[s.idx(1, i)]
			x[s.idx(n+1, i)] = x[s.idx(n, i)]
		}
		if b == 2 {
			x[s.idx(i, 0)] = -x[s.idx(i, 1)]
			x[s.idx(i, n+1)] = -x[s.idx(i, n)]
		} else {
			x[s.idx(i, 0)] = x[s.idx(i, 1)]
			x[s.idx(i, n+1)] = x[s.idx(i, n)]
		}
	}
	x[s.idx(0, 0)] = 0.5 * (x[s.idx(1, 0)] + x[s.idx(0, 1)])
	x[s.idx(0, n+1)] = 0.5 * (x[s.idx(1, n+1)] + x[s.idx(0, n)])
	x[s.idx(n+1, 0)] = 0.5 * (x[s.idx(n, 0)] + x[s.idx(n+1, 1)])
	x[s.idx(n+1, n+1)] = 0.5 * (x[s.idx(n, n+1)] + x[s.idx(n+1, n)])
}

// linSolve runs Gauss-Seidel relaxation for x in the implicit system
// x = (x0 + a*neighbors(x)) / c.
func (s *Solver) linSolve(b int, x, x0 []float64, a, c float64) {
	n := s.N
	for k := 0; k < relaxationIters; k++ {
		for j := 1; j <= n; j++ {
			for i := 1; i <= n; i++ {
				x[s.idx(i, j)] = (x0[s.idx(i, j)] + a*(x[s.idx(i-1, j)]+x[s.idx(i+1, j)]+
					x[s.idx(i, j-1)]+x[s.idx(i, j+1)])) / c
			}
		}
		s.setBnd(b, x)
	}
}

// diffuse exchanges each cell with its neighbors at the given rate, solved
// backward in time for unconditional stability.
func (s *Solver) diffuse(b int, x, x0 []float64, rate, dt float64) {
	a := dt * rate * float64(s.N) * float64(s.N)
	s.linSolve(b, x, x0, a, 1+4*a)
}

// advect transports d0 along the velocity field (u, v): each cell center is
// traced backward for dt and the carried quantity is bilinearly interpolated.
func (s *Solver) advect(b int, d, d0, u, v []float64, dt float64) {
	n := s.N
	dt0 := dt * float64(n)
	for j := 1; j <= n; j++ {
		for i := 1; i <= n; i++ {
			x := float64(i) - dt0*u[s.idx(i, j)]
			y := float64(j) - dt0*v[s.idx(i, j)]

			if x < 0.5 {
				x = 0.5
			}
			if x > float64(n)+0.5 {
				x = float64(n) + 0.5
			}
			i0 := int(x)
			i1 := i0 + 1
			s1 := x - float64(i0)
			s0 := 1 - s1

			if y < 0.5 {
				y = 0.5
			}
			if y > float64(n)+0.5 {
				y = float64(n) + 0.5
			}
			j0 := int(y)
			j1 := j0 + 1
			t1 := y - float64(j0)
			t0 := 1 - t1

			d[s.idx(i, j)] = s0*(t0*d0[s.idx(i0, j0)]+t1*d0[s.idx(i0, j1)]) +
				s1*(t0*d0[s.idx(i1, j0)]+t1*d0[s.idx(i1, j1)])
		}
	}
	s.setBnd(b, d)
}

// project subtracts the gradient part of the velocity field so it conserves
// mass. p and div are scratch fields.
func (s *Solver) project(u, v, p, div []float64) {
	n := s.N
	h := 1.0 / float64(n)
	for j := 1; j <= n; j++ {
		for i := 1; i <= n; i++ {
			div[s.idx(i, j)] = -0.5 * h * (u[s.idx(i+1, j)] - u[s.idx(i-1, j)] +
				v[s.idx(i, j+1)] - v[s.idx(i, j-1)])
			p[s.idx(i, j)] = 0
		}
	}
	s.setBnd(0, div)
	s.setBnd(0, p)
	s.linSolve(0, p, div, 1, 4)
	for j := 1; j <= n; j++ {
		for i := 1; i <= n; i++ {
			u[s.idx(i, j)] -= 0.5 * (p[s.idx(i+1, j)] - p[s.idx(i-1, j)]) / h
			v[s.idx(i, j)] -= 0.5 * (p[s.idx(i, j+1)] - p[s.idx(i, j-1)]) / h
		}
	}
	s.setBnd(1, u)
	s.setBnd(2, v)
}

// addSource applies x += dt*src.
func addSource(x, src []float64, dt float64) {
	for i := range x {
		x[i] += dt * src[i]
	}
}

func (s *Solver) densStep(dt float64) {
	addSource(s.Dens, s.densSrc, dt)
	copy(s.scratch, s.Dens)
	s.diffuse(0, s.Dens, s.scratch, s.Diff, dt)
	copy(s.scratch, s.Dens)
	s.advect(0, s.Dens, s.scratch, s.U, s.V, dt)
}

func (s *Solver) velStep(dt float64) {
	addSource(s.U, s.uSrc, dt)
	addSource(s.V, s.vSrc, dt)

	copy(s.scratch, s.U)
	s.diffuse(1, s.U, s.scratch, s.Visc, dt)
	copy(s.scratch, s.V)
	s.diffuse(2, s.V, s.scratch, s.Visc, dt)
	s.project(s.U, s.V, s.scratch, s.scratch2)

	copy(s.scratch, s.U)
	copy(s.scratch2, s.V)
	s.advect(1, s.U, s.scratch, s.scratch, s.scratch2, dt)
	s.advect(2, s.V, s.scratch2, s.scratch, s.scratch2, dt)
	s.project(s.U, s.V, s.scratch, s.scratch2)
}
