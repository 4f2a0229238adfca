// Package ragged implements a strongly typed list of variable-length items
// backed by a single flat buffer.
//
// What:
//
//   - List[T] stores items of one element type but differing lengths.
//   - One contiguous []T holds every element; an item table of (start, end)
//     spans records where each item lives.
//   - Append/Insert/Remove keep both the buffer and the table consistent
//     before returning; readers never observe a half-applied mutation.
//   - Element-wise arithmetic broadcasts over all items in a single pass
//     over the flat buffer, not item by item.
//
// Why:
//
//   - Per-item allocation ([][]T) scatters small slices across the heap.
//     A flat buffer keeps elements contiguous, so bulk operations run at
//     memcpy-like speed and the whole list can be handed to a device or
//     codec as one region.
//
// Growth:
//
//   - Both the buffer and the item table over-allocate to the next power of
//     two when they fill, so repeated appends are amortized O(1). Initial
//     capacities are 512 elements and 64 items.
//
// Errors:
//
//   - ErrIndexRange: item index outside the list.
//   - ErrPartition: flat data cannot be split into the requested sizes.
//   - ErrItemSize: in-place item write with the wrong length.
//   - ErrBroadcast: per-item operand count differs from the item count.
//
// Not safe for concurrent use; mutation is single-threaded and synchronous.
package ragged
