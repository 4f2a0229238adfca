// Package fractal computes Mandelbrot escape counts over a pixel grid.
//
// The kernel walks the complex plane sampled at xn by yn points and records,
// per pixel, the iteration at which the orbit escapes the horizon. The smooth
// variant applies the normalized iteration count so bands blend continuously,
// useful for grayscale rendering without a plotting library.
package fractal

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrBadPlane indicates a degenerate sampling grid or iteration budget.
var ErrBadPlane = errors.New("fractal: xn, yn, and maxiter must be positive")

// DefaultHorizon is the escape radius for the smooth variant; a large horizon
// makes the fractional part of the normalized count meaningful.
const DefaultHorizon = float64(1 << 40)

// Mandelbrot returns per-pixel escape iterations on a yn-row, xn-column grid
// in row-major order. Pixels that never escape within maxiter hold 0, the
// convention that keeps the interior black when rendered.
func Mandelbrot(xmin, xmax, ymin, ymax float64, xn, yn, maxiter int) ([]uint16, error) {
	if xn <= 0 || yn <= 0 || maxiter <= 0 || maxiter >= math.MaxUint16 {
		return nil, ErrBadPlane
	}
	counts := make([]uint16, xn*yn)

	// Sampling steps; a single row or column collapses to the lower bound.
	dx := 0.0
	if xn > 1 {
		dx = (xmax - xmin) / float64(xn-1)
	}
	dy := 0.0
	if yn > 1 {
		dy = (ymax - ymin) / float64(yn-1)
	}

	for j := 0; j < yn; j++ {
		ci := ymin + float64(j)*dy
		row := counts[j*xn : (j+1)*xn]
		for i := 0; i < xn; i++ {
			cr := xmin + float64(i)*dx
			row[i] = escape(cr, ci, maxiter, 2.0)
		}
	}
	return counts, nil
}

// escape iterates z = z^2 + c and returns the escape iteration, or 0 when the
// orbit stays bounded for maxiter steps.
func escape(cr, ci float64, maxiter int, horizon float64) uint16 {
	var zr, zi float64
	h2 := horizon * horizon
	for n := 0; n < maxiter; n++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > h2 {
			return uint16(n)
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return 0
}

// Smooth returns normalized iteration counts for continuous shading, using
// the renormalized escape-time formula n + 1 - log2(log|z|) + log2(log h).
// Interior pixels hold 0.
func Smooth(xmin, xmax, ymin, ymax float64, xn, yn, maxiter int) ([]float64, error) {
	if xn <= 0 || yn <= 0 || maxiter <= 0 {
		return nil, ErrBadPlane
	}
	horizon := DefaultHorizon
	logHorizon := math.Log(math.Log(horizon)) / math.Ln2

	dx := 0.0
	if xn > 1 {
		dx = (xmax - xmin) / float64(xn-1)
	}
	dy := 0.0
	if yn > 1 {
		dy = (ymax - ymin) / float64(yn-1)
	}

	vals := make([]float64, xn*yn)
	for j := 0; j < yn; j++ {
		ci := ymin + float64(j)*dy
		row := vals[j*xn : (j+1)*xn]
		for i := 0; i < xn; i++ {
			c := complex(xmin+float64(i)*dx, ci)
			var z complex128
			for n := 0; n < maxiter; n++ {
				if cmplx.Abs(z) > horizon {
					row[i] = float64(n) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Ln2 + logHorizon
					break
				}
				z = z*z + c
			}
		}
	}
	return vals, nil
}

// ToGray maps values onto 8-bit grayscale, scaling the occupied value range
// to [0, 255]. A constant field maps to black.
func ToGray(vals []float64) []uint8 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	gray := make([]uint8, len(vals))
	if hi <= lo {
		return gray
	}
	scale := 255 / (hi - lo)
	for i, v := range vals {
		gray[i] = uint8((v - lo) * scale)
	}
	return gray
}
