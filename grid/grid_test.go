package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccess(t *testing.T) {
	g, err := New[int](4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.W())
	assert.Equal(t, 3, g.H())

	require.NoError(t, g.Set(2, 1, 7))
	v, err := g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	// Row is a live window onto the backing buffer.
	g.Row(1)[2] = 9
	v, _ = g.At(2, 1)
	assert.Equal(t, 9, v)

	_, err = g.At(4, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(0, 3, 1), ErrOutOfBounds)
}

func TestNewInvalid(t *testing.T) {
	_, err := New[int](0, 5)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = New[int](5, -1)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]uint8{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, g.Cells())

	_, err = FromRows([][]uint8{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = FromRows([][]uint8{})
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New[int](2, 2)
	_ = g.Set(0, 0, 1)
	cp := g.Clone()
	_ = cp.Set(0, 0, 99)

	v, _ := g.At(0, 0)
	assert.Equal(t, 1, v)
}

func TestFill(t *testing.T) {
	g, _ := New[float64](3, 2)
	g.Fill(2.5)
	for _, v := range g.Cells() {
		assert.Equal(t, 2.5, v)
	}
}
