package dirty

import (
	"context"
	"fmt"

	"github.com/vispack/veckit/internal/buf"
	"github.com/vispack/veckit/internal/mmfile"
)

// Sync hands the buffer's dirty region to the consumer: it reads the bounding
// interval, uploads exactly that byte range, and resets the region. Returns
// the number of bytes uploaded; zero when the buffer is clean.
//
// The context is checked before the upload starts. If the upload fails the
// dirty region is left intact so a retry can cover the same bytes.
func Sync(ctx context.Context, b *Buffer, u Uploader) (int64, error) {
	r, ok := b.Dirty()
	if !ok {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	p, ok2 := buf.Slice(b.Bytes(), int(r.Off), int(r.Len))
	if !ok2 {
		return 0, fmt.Errorf("dirty: tracked range [%d,%d) exceeds %d-byte buffer", r.Off, r.End(), b.Len())
	}
	if err := u.Upload(r.Off, p); err != nil {
		return 0, fmt.Errorf("dirty: upload [%d,%d): %w", r.Off, r.End(), err)
	}

	b.ResetDirty()
	return r.Len, nil
}

// FileDevice is an Uploader backed by a memory-mapped file, standing in for a
// device-side allocation. Uploads copy into the mapping and flush the touched
// pages with the platform's sync call.
type FileDevice struct {
	path    string
	data    []byte
	cleanup func() error
}

// OpenFileDevice creates (or truncates) the file at path, sizes it to size
// bytes, and maps it read-write.
func OpenFileDevice(path string, size int) (*FileDevice, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dirty: device size must be positive, got %d", size)
	}
	data, cleanup, err := mmfile.MapRW(path, size)
	if err != nil {
		return nil, fmt.Errorf("dirty: map device file: %w", err)
	}
	return &FileDevice{path: path, data: data, cleanup: cleanup}, nil
}

// Upload copies p into the device allocation at off and flushes the touched
// pages.
func (d *FileDevice) Upload(off int64, p []byte) error {
	dst, ok := buf.Slice(d.data, int(off), len(p))
	if !ok {
		return fmt.Errorf("upload %d bytes at %d into %d-byte device", len(p), off, len(d.data))
	}
	copy(dst, p)
	return d.flushRange(off, int64(len(p)))
}

// Len returns the device allocation size in bytes.
func (d *FileDevice) Len() int { return len(d.data) }

// Bytes returns the device-side contents (for verification in tests/demos).
func (d *FileDevice) Bytes() []byte { return d.data }

// Close unmaps the device file.
func (d *FileDevice) Close() error {
	if d.cleanup == nil {
		return nil
	}
	err := d.cleanup()
	d.cleanup = nil
	d.data = nil
	return err
}
