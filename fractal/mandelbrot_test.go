package fractal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMandelbrotKnownPoints(t *testing.T) {
	// A 3x3 grid centered on the origin: the center column lies inside the
	// set, the far right escapes quickly.
	counts, err := Mandelbrot(-2, 2, -2, 2, 3, 3, 100)
	require.NoError(t, err)
	require.Len(t, counts, 9)

	// c = 0 (center pixel) never escapes.
	assert.Equal(t, uint16(0), counts[4])

	// c = 2 escapes immediately after the first squaring.
	assert.NotZero(t, counts[5])
}

func TestMandelbrotInteriorStaysZero(t *testing.T) {
	// Sample a patch strictly inside the main cardioid.
	counts, err := Mandelbrot(-0.1, 0.1, -0.1, 0.1, 8, 8, 50)
	require.NoError(t, err)
	for i, c := range counts {
		assert.Equal(t, uint16(0), c, "pixel %d should be interior", i)
	}
}

func TestMandelbrotExteriorEscapes(t *testing.T) {
	counts, err := Mandelbrot(3, 4, 3, 4, 4, 4, 50)
	require.NoError(t, err)
	for i, c := range counts {
		assert.NotZero(t, c, "pixel %d should escape", i)
	}
}

func TestMandelbrotArgErrors(t *testing.T) {
	_, err := Mandelbrot(-2, 1, -1, 1, 0, 10, 10)
	assert.ErrorIs(t, err, ErrBadPlane)
	_, err = Mandelbrot(-2, 1, -1, 1, 10, 10, 0)
	assert.ErrorIs(t, err, ErrBadPlane)
}

func TestSmoothMonotoneNearBoundary(t *testing.T) {
	vals, err := Smooth(-2.25, 0.75, -1.25, 1.25, 64, 64, 50)
	require.NoError(t, err)
	require.Len(t, vals, 64*64)

	// Smooth values are non-negative and bounded by maxiter + 1.
	for i, v := range vals {
		assert.GreaterOrEqual(t, v, 0.0, "pixel %d", i)
		assert.LessOrEqual(t, v, 51.0, "pixel %d", i)
	}
}

func TestToGray(t *testing.T) {
	gray := ToGray([]float64{0, 5, 10})
	assert.Equal(t, []uint8{0, 127, 255}, gray)

	flat := ToGray([]float64{3, 3, 3})
	assert.Equal(t, []uint8{0, 0, 0}, flat)
}

func BenchmarkMandelbrot(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Mandelbrot(-2.25, 0.75, -1.25, 1.25, 300, 250, 50)
	}
}
