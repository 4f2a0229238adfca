package dirty

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vispack/veckit/dtype"
)

// recordingUploader captures every upload for assertions.
type recordingUploader struct {
	offs []int64
	data [][]byte
	err  error
}

func (u *recordingUploader) Upload(off int64, p []byte) error {
	if u.err != nil {
		return u.err
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	u.offs = append(u.offs, off)
	u.data = append(u.data, cp)
	return nil
}

func TestSyncUploadsExactlyDirtyRange(t *testing.T) {
	b := NewBuffer(64, dtype.New(dtype.Uint8))
	b.ResetDirty()
	v := b.View()
	require.NoError(t, v.WriteBytes(10, []byte{1, 2, 3}))
	require.NoError(t, v.WriteBytes(20, []byte{4}))

	u := &recordingUploader{}
	n, err := Sync(context.Background(), b, u)
	require.NoError(t, err)

	// One contiguous transfer covering [10, 21).
	assert.Equal(t, int64(11), n)
	require.Len(t, u.offs, 1)
	assert.Equal(t, int64(10), u.offs[0])
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 4}, u.data[0])

	// After sync the buffer is clean; a second sync is a no-op.
	n, err = Sync(context.Background(), b, u)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, u.offs, 1)
}

func TestSyncFirstUploadCoversWholeBuffer(t *testing.T) {
	b := NewBuffer(32, dtype.New(dtype.Uint8))
	u := &recordingUploader{}

	n, err := Sync(context.Background(), b, u)
	require.NoError(t, err)
	assert.Equal(t, int64(32), n)
	require.Len(t, u.offs, 1)
	assert.Equal(t, int64(0), u.offs[0])
}

func TestSyncUploadFailureKeepsDirty(t *testing.T) {
	b := NewBuffer(16, dtype.New(dtype.Uint8))
	boom := errors.New("device lost")
	u := &recordingUploader{err: boom}

	_, err := Sync(context.Background(), b, u)
	require.ErrorIs(t, err, boom)

	// Region still dirty, so a retry covers the same bytes.
	r, ok := b.Dirty()
	require.True(t, ok)
	assert.Equal(t, Range{Off: 0, Len: 16}, r)
}

func TestSyncCancelledContext(t *testing.T) {
	b := NewBuffer(16, dtype.New(dtype.Uint8))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sync(ctx, b, &recordingUploader{})
	assert.ErrorIs(t, err, context.Canceled)

	_, ok := b.Dirty()
	assert.True(t, ok)
}

func TestFileDeviceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.bin")

	b := NewBuffer(512, dtype.New(dtype.Float64))
	dev, err := OpenFileDevice(path, b.Len())
	require.NoError(t, err)
	defer dev.Close()

	v := b.View()
	require.NoError(t, v.SetFloat64s(100, []float64{1.5, 2.5, 3.5}))

	// First sync: whole buffer (fresh allocation).
	n, err := Sync(context.Background(), b, dev)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), n)

	// Device mirrors the buffer.
	assert.Equal(t, b.Bytes(), dev.Bytes())

	// Incremental write, incremental upload.
	require.NoError(t, v.SetFloat64(7, 9.75))
	n, err = Sync(context.Background(), b, dev)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, b.Bytes(), dev.Bytes())
}

func TestFileDeviceUploadBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.bin")
	dev, err := OpenFileDevice(path, 64)
	require.NoError(t, err)
	defer dev.Close()

	assert.Error(t, dev.Upload(60, make([]byte, 8)))
	assert.NoError(t, dev.Upload(56, make([]byte, 8)))
}

func TestOpenFileDeviceInvalidSize(t *testing.T) {
	_, err := OpenFileDevice(filepath.Join(t.TempDir(), "x"), 0)
	assert.Error(t, err)
}
