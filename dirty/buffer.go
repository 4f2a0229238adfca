package dirty

import (
	"fmt"

	"github.com/vispack/veckit/dtype"
	"github.com/vispack/veckit/internal/buf"
)

// Buffer is the base allocation of a memory-aware array: a flat byte buffer
// of fixed element type whose writes are tracked so a consumer can mirror
// exactly the modified region on an external device.
//
// A new Buffer is wholly dirty, so the first synchronization uploads the
// entire allocation. Multi-byte elements are stored little-endian.
type Buffer struct {
	data    []byte
	dt      dtype.Type
	tracker *Tracker
}

// ErrViewRange indicates view bounds outside the parent view or buffer.
var ErrViewRange = &dtype.Error{Kind: dtype.ErrKindRange, Msg: "dirty: view range out of bounds"}

// NewBuffer allocates a buffer of count elements of type dt.
func NewBuffer(count int, dt dtype.Type) *Buffer {
	size, ok := buf.MulOverflowSafe(count, dt.Size())
	if !ok || count < 0 {
		panic(fmt.Sprintf("dirty: invalid buffer size (%d elements of %s)", count, dt))
	}
	b := &Buffer{
		data:    make([]byte, size),
		dt:      dt,
		tracker: NewTracker(),
	}
	// Whole buffer dirty at creation.
	b.tracker.Add(0, size)
	return b
}

// Len returns the allocation size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Count returns the number of elements.
func (b *Buffer) Count() int { return len(b.data) / b.dt.Size() }

// Type returns the element type descriptor.
func (b *Buffer) Type() dtype.Type { return b.dt }

// Bytes returns the raw storage. Writing through it bypasses dirty tracking;
// use a View for tracked writes.
func (b *Buffer) Bytes() []byte { return b.data }

// Dirty returns the bounding interval of all bytes written since the last
// reset, and whether the buffer is dirty at all.
func (b *Buffer) Dirty() (Range, bool) { return b.tracker.Bounds() }

// ResetDirty clears the dirty region to empty. Called by the consumer after
// it has mirrored the region (see Sync).
func (b *Buffer) ResetDirty() { b.tracker.Reset() }

// MarkDirty records an externally performed write of n bytes at byte offset
// off, for callers that mutate Bytes() directly.
func (b *Buffer) MarkDirty(off, n int) { b.tracker.Add(off, n) }

// View returns a view covering the whole buffer.
func (b *Buffer) View() *View {
	return &View{base: b, off: 0, size: len(b.data)}
}

// View is a window onto a Buffer. All writes go through views; each write
// extends the root buffer's dirty region by the written byte range. Views may
// be narrowed with Sub, and Extents always reports the window relative to the
// base allocation.
type View struct {
	base *Buffer
	off  int // byte offset of the window within the base allocation
	size int // window size in bytes
}

// Extents returns the view's (offset, size) in bytes relative to the base
// allocation.
func (v *View) Extents() (offset, size int) { return v.off, v.size }

// Count returns the number of whole elements in the view.
func (v *View) Count() int { return v.size / v.base.dt.Size() }

// Type returns the element type of the underlying buffer.
func (v *View) Type() dtype.Type { return v.base.dt }

// Sub narrows the view to elements [lo, hi) of this view. Returns
// ErrViewRange when the bounds fall outside the view.
func (v *View) Sub(lo, hi int) (*View, error) {
	if lo < 0 || hi < lo || hi > v.Count() {
		return nil, fmt.Errorf("sub [%d:%d) of %d elements: %w", lo, hi, v.Count(), ErrViewRange)
	}
	es := v.base.dt.Size()
	return &View{
		base: v.base,
		off:  v.off + lo*es,
		size: (hi - lo) * es,
	}, nil
}

// Bytes returns the view's window of the base storage (read-only by
// convention; use the write methods so dirty tracking stays correct).
func (v *View) Bytes() []byte {
	return v.base.data[v.off : v.off+v.size]
}

// WriteBytes copies p into the view at byte offset off and marks the written
// range dirty on the root buffer.
func (v *View) WriteBytes(off int, p []byte) error {
	dst, ok := buf.Slice(v.Bytes(), off, len(p))
	if !ok {
		return fmt.Errorf("write %d bytes at %d in %d-byte view: %w", len(p), off, v.size, ErrViewRange)
	}
	copy(dst, p)
	v.base.tracker.Add(v.off+off, len(p))
	return nil
}

// elemSlot bounds-checks element i and returns its byte window.
func (v *View) elemSlot(i int) ([]byte, int, error) {
	es := v.base.dt.Size()
	off := i * es
	b, ok := buf.Slice(v.Bytes(), off, es)
	if !ok || i < 0 {
		return nil, 0, fmt.Errorf("element %d of %d: %w", i, v.Count(), ErrViewRange)
	}
	return b, v.off + off, nil
}

// SetFloat64 writes a float64 element at index i. Returns dtype.ErrType when
// the buffer does not hold float64 elements.
func (v *View) SetFloat64(i int, val float64) error {
	if v.base.dt.Kind() != dtype.Float64 {
		return fmt.Errorf("float64 write to %s buffer: %w", v.base.dt, dtype.ErrType)
	}
	slot, abs, err := v.elemSlot(i)
	if err != nil {
		return err
	}
	buf.PutF64LE(slot, val)
	v.base.tracker.Add(abs, len(slot))
	return nil
}

// Float64 reads the float64 element at index i.
func (v *View) Float64(i int) (float64, error) {
	if v.base.dt.Kind() != dtype.Float64 {
		return 0, fmt.Errorf("float64 read from %s buffer: %w", v.base.dt, dtype.ErrType)
	}
	slot, _, err := v.elemSlot(i)
	if err != nil {
		return 0, err
	}
	return buf.F64LE(slot), nil
}

// SetInt32 writes an int32 element at index i.
func (v *View) SetInt32(i int, val int32) error {
	if v.base.dt.Kind() != dtype.Int32 {
		return fmt.Errorf("int32 write to %s buffer: %w", v.base.dt, dtype.ErrType)
	}
	slot, abs, err := v.elemSlot(i)
	if err != nil {
		return err
	}
	buf.PutI32LE(slot, val)
	v.base.tracker.Add(abs, len(slot))
	return nil
}

// Int32 reads the int32 element at index i.
func (v *View) Int32(i int) (int32, error) {
	if v.base.dt.Kind() != dtype.Int32 {
		return 0, fmt.Errorf("int32 read from %s buffer: %w", v.base.dt, dtype.ErrType)
	}
	slot, _, err := v.elemSlot(i)
	if err != nil {
		return 0, err
	}
	return buf.I32LE(slot), nil
}

// SetFloat64s writes consecutive float64 elements starting at index i.
func (v *View) SetFloat64s(i int, vals []float64) error {
	if v.base.dt.Kind() != dtype.Float64 {
		return fmt.Errorf("float64 write to %s buffer: %w", v.base.dt, dtype.ErrType)
	}
	es := v.base.dt.Size()
	if _, err := buf.CheckSpanBounds(v.size, i*es, len(vals), es); err != nil || i < 0 {
		return fmt.Errorf("write %d elements at %d of %d: %w", len(vals), i, v.Count(), ErrViewRange)
	}
	window := v.Bytes()[i*es:]
	for k, val := range vals {
		buf.PutF64LE(window[k*es:], val)
	}
	v.base.tracker.Add(v.off+i*es, len(vals)*es)
	return nil
}

// Fill writes the single-element pattern elem across the whole view.
func (v *View) Fill(elem []byte) error {
	es := v.base.dt.Size()
	if len(elem) != es {
		return fmt.Errorf("fill pattern of %d bytes for %s elements: %w", len(elem), v.base.dt, dtype.ErrType)
	}
	window := v.Bytes()
	for off := 0; off+es <= len(window); off += es {
		copy(window[off:off+es], elem)
	}
	v.base.tracker.Add(v.off, v.size)
	return nil
}
