package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(3, 4)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	assert.False(t, ok)
}

func TestMulOverflowSafe(t *testing.T) {
	v, ok := MulOverflowSafe(6, 7)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = MulOverflowSafe(math.MaxInt, 2)
	assert.False(t, ok)

	_, ok = MulOverflowSafe(math.MaxInt/2+1, 2)
	assert.False(t, ok)
}

func TestCheckSpanBounds(t *testing.T) {
	end, err := CheckSpanBounds(100, 10, 10, 8)
	require.NoError(t, err)
	assert.Equal(t, 90, end)

	_, err = CheckSpanBounds(100, 10, 12, 8)
	assert.Error(t, err)

	_, err = CheckSpanBounds(100, -1, 1, 1)
	assert.Error(t, err)

	_, err = CheckSpanBounds(100, 0, -1, 1)
	assert.Error(t, err)

	_, err = CheckSpanBounds(100, 0, math.MaxInt, 8)
	assert.Error(t, err)
}

func TestSliceAndHas(t *testing.T) {
	b := make([]byte, 16)

	s, ok := Slice(b, 4, 8)
	require.True(t, ok)
	assert.Len(t, s, 8)

	_, ok = Slice(b, 10, 8)
	assert.False(t, ok)

	_, ok = Slice(b, -1, 2)
	assert.False(t, ok)

	assert.True(t, Has(b, 0, 16))
	assert.False(t, Has(b, 0, 17))
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{512, 512},
		{513, 1024},
		{1000, 1024},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NextPow2(c.in), "NextPow2(%d)", c.in)
	}
}
