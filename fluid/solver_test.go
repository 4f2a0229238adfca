package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverBadSize(t *testing.T) {
	_, err := NewSolver(0, 0.001, 0.001)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestDensitySpreads(t *testing.T) {
	s, err := NewSolver(16, 0.001, 0)
	require.NoError(t, err)

	c := s.idx(8, 8)
	s.AddDensity(8, 8, 100)
	for i := 0; i < 5; i++ {
		s.Step(0.1)
		s.AddDensity(8, 8, 100)
	}

	assert.Positive(t, s.Dens[c])
	// Diffusion reaches the neighbors within a few steps.
	assert.Positive(t, s.Dens[s.idx(7, 8)])
	assert.Positive(t, s.Dens[s.idx(8, 9)])
	// The injected peak dominates the far corner.
	assert.Greater(t, s.Dens[c], s.Dens[s.idx(1, 1)])
}

func TestDensityStaysNonNegative(t *testing.T) {
	s, err := NewSolver(12, 0.0005, 0.0005)
	require.NoError(t, err)

	s.AddDensity(6, 6, 50)
	s.AddVelocity(6, 6, 2, -1)
	for i := 0; i < 20; i++ {
		s.Step(0.1)
	}
	for i, v := range s.Dens {
		require.GreaterOrEqual(t, v, 0.0, "cell %d went negative", i)
	}
}

func TestFieldsStayFinite(t *testing.T) {
	s, err := NewSolver(10, 0.001, 0.001)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		s.AddVelocity(5, 5, 5, 3)
		s.AddDensity(5, 5, 10)
		s.Step(0.1)
	}
	for i := range s.U {
		require.False(t, math.IsNaN(s.U[i]) || math.IsInf(s.U[i], 0), "u[%d]", i)
		require.False(t, math.IsNaN(s.V[i]) || math.IsInf(s.V[i], 0), "v[%d]", i)
		require.False(t, math.IsNaN(s.Dens[i]) || math.IsInf(s.Dens[i], 0), "dens[%d]", i)
	}
}

func TestStepConsumesSources(t *testing.T) {
	s, err := NewSolver(8, 0.001, 0)
	require.NoError(t, err)

	s.AddDensity(4, 4, 10)
	s.AddVelocity(4, 4, 1, 1)
	s.Step(0.1)

	assert.Positive(t, s.TotalDensity())
	for i := range s.densSrc {
		require.Zero(t, s.densSrc[i], "density source %d not cleared", i)
		require.Zero(t, s.uSrc[i], "u source %d not cleared", i)
		require.Zero(t, s.vSrc[i], "v source %d not cleared", i)
	}
}

func TestAddOutsideInteriorIgnored(t *testing.T) {
	s, err := NewSolver(4, 0.001, 0)
	require.NoError(t, err)

	s.AddDensity(0, 2, 10)
	s.AddDensity(5, 2, 10)
	s.AddVelocity(2, 0, 1, 1)
	s.Step(0.1)
	assert.Zero(t, s.TotalDensity())
}

func TestProjectionDampsDivergence(t *testing.T) {
	s, err := NewSolver(16, 0, 0)
	require.NoError(t, err)

	// A strong one-sided push creates divergence; projection should keep the
	// interior close to divergence-free.
	s.AddVelocity(8, 8, 10, 0)
	s.Step(0.1)

	var worst float64
	h := 1.0 / float64(s.N)
	for j := 2; j < s.N; j++ {
		for i := 2; i < s.N; i++ {
			div := 0.5 * h * (s.U[s.idx(i+1, j)] - s.U[s.idx(i-1, j)] +
				s.V[s.idx(i, j+1)] - s.V[s.idx(i, j-1)])
			if d := math.Abs(div); d > worst {
				worst = d
			}
		}
	}
	assert.Less(t, worst, 0.05, "interior divergence too large")
}
