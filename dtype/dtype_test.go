package dtype

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSizes(t *testing.T) {
	cases := []struct {
		kind Kind
		size int
		name string
	}{
		{Int8, 1, "int8"},
		{Int16, 2, "int16"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Uint16, 2, "uint16"},
		{Uint32, 4, "uint32"},
		{Uint64, 8, "uint64"},
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
	}
	for _, c := range cases {
		dt := New(c.kind)
		assert.Equal(t, c.size, dt.Size(), c.name)
		assert.Equal(t, c.name, dt.String())
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, Float64, Of[float64]().Kind())
	assert.Equal(t, Float32, Of[float32]().Kind())
	assert.Equal(t, Int32, Of[int32]().Kind())
	assert.Equal(t, Uint8, Of[uint8]().Kind())
	assert.Equal(t, Uint64, Of[uint64]().Kind())
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("view write: %w", ErrRange)
	require.True(t, errors.Is(wrapped, ErrRange))
	assert.False(t, errors.Is(wrapped, ErrType))

	withCause := &Error{Kind: ErrKindType, Msg: "decode float64", Err: ErrRange}
	assert.Equal(t, "decode float64: index out of range", withCause.Error())
	assert.True(t, errors.Is(withCause, ErrType))
	assert.True(t, errors.Is(withCause, ErrRange))
}
