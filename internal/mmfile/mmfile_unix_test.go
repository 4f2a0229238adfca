//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRWRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.bin")

	data, cleanup, err := MapRW(path, 8192)
	require.NoError(t, err)
	require.Len(t, data, 8192)

	copy(data[100:], []byte("hello mapping"))
	require.NoError(t, cleanup())

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, onDisk, 8192)
	assert.Equal(t, []byte("hello mapping"), onDisk[100:100+13])
}

func TestMapRWInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.bin")
	_, _, err := MapRW(path, 0)
	assert.Error(t, err)
}

func TestMapRWDoubleCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.bin")
	_, cleanup, err := MapRW(path, 4096)
	require.NoError(t, err)
	require.NoError(t, cleanup())
	assert.NoError(t, cleanup())
}
