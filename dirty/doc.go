// Package dirty provides dirty-region tracking for typed buffers that are
// mirrored on an external device.
//
// # Overview
//
// A Buffer is a flat typed allocation whose writes all pass through Views.
// Every write extends the buffer's dirty region, the smallest contiguous byte
// range covering everything modified since the last synchronization. A
// consumer reads that region, uploads exactly those bytes, and resets it.
//
// # Tracker
//
// The Tracker accumulates raw (offset, length) ranges. Two summaries are
// available:
//
//   - Bounds(): the single bounding interval of all ranges. This may
//     over-approximate (two distant small writes produce one large interval)
//     but keeps the upload contract to one contiguous transfer.
//   - Coalesced(): page-aligned, sorted, merged ranges, for consumers that
//     flush page by page (see FileDevice).
//
// # Hand-off contract
//
// The owner writes through views; the consumer calls Sync, which uploads the
// dirty bounding range and resets the tracker. A freshly created Buffer is
// wholly dirty so that the first Sync uploads everything.
//
//	b := dirty.NewBuffer(1024, dtype.New(dtype.Float64))
//	v, _ := b.View().Sub(10, 20)
//	_ = v.SetFloat64(0, 3.14)         // marks bytes dirty on the root buffer
//	n, _ := dirty.Sync(ctx, b, dev)   // uploads exactly the dirty range
//
// # Thread Safety
//
// Trackers and Buffers are not thread-safe. Only one goroutine should use
// them at a time.
package dirty
