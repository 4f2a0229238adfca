// Package vecop provides in-place vectorized operations on numeric slices.
//
// All kernels operate on whole slices in a single pass with zero allocations,
// so that callers express computations as bulk operations instead of explicit
// element loops. Binary kernels require equal-length operands and panic on
// mismatch: length agreement is a programming error on a hot path, not a
// recoverable condition.
package vecop

import "math"

// Number is the element set the generic kernels accept.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func checkLen(a, b int) {
	if a != b {
		panic("vecop: operand length mismatch")
	}
}

// Fill sets every element of dst to v.
func Fill[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// AddScalar adds v to every element of dst.
func AddScalar[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] += v
	}
}

// Scale multiplies every element of dst by v.
func Scale[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] *= v
	}
}

// Add adds src to dst element-wise.
func Add[T Number](dst, src []T) {
	checkLen(len(dst), len(src))
	for i := range dst {
		dst[i] += src[i]
	}
}

// Sub subtracts src from dst element-wise.
func Sub[T Number](dst, src []T) {
	checkLen(len(dst), len(src))
	for i := range dst {
		dst[i] -= src[i]
	}
}

// Mul multiplies dst by src element-wise.
func Mul[T Number](dst, src []T) {
	checkLen(len(dst), len(src))
	for i := range dst {
		dst[i] *= src[i]
	}
}

// AXPY computes dst += a*src element-wise.
func AXPY(dst []float64, a float64, src []float64) {
	checkLen(len(dst), len(src))
	for i := range dst {
		dst[i] += a * src[i]
	}
}

// Map applies fn to every element of dst in place.
func Map[T Number](dst []T, fn func(T) T) {
	for i := range dst {
		dst[i] = fn(dst[i])
	}
}

// Sum returns the sum of all elements.
func Sum[T Number](s []T) T {
	var acc T
	for _, v := range s {
		acc += v
	}
	return acc
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) float64 {
	checkLen(len(a), len(b))
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

// Min returns the smallest element of s. Panics on an empty slice.
func Min[T Number](s []T) T {
	if len(s) == 0 {
		panic("vecop: Min of empty slice")
	}
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element of s. Panics on an empty slice.
func Max[T Number](s []T) T {
	if len(s) == 0 {
		panic("vecop: Max of empty slice")
	}
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Clamp limits every element of dst to [lo, hi].
func Clamp(dst []float64, lo, hi float64) {
	for i, v := range dst {
		if v < lo {
			dst[i] = lo
		} else if v > hi {
			dst[i] = hi
		}
	}
}

// Hypot writes sqrt(x[i]^2 + y[i]^2) into dst element-wise.
func Hypot(dst, x, y []float64) {
	checkLen(len(dst), len(x))
	checkLen(len(dst), len(y))
	for i := range dst {
		dst[i] = math.Hypot(x[i], y[i])
	}
}

// Norm2 returns the Euclidean norm of the 2-vector (x, y).
func Norm2(x, y float64) float64 {
	return math.Hypot(x, y)
}
