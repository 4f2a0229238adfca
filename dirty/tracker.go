package dirty

import "sort"

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	// This reduces allocations during typical workloads.
	defaultRangeCapacity = 64

	// standardPageSize is the typical OS page size (4KB).
	standardPageSize = 4096
)

// Range represents a dirty byte range (absolute buffer offsets).
type Range struct {
	Off int64 // Absolute offset in the base allocation
	Len int64 // Length in bytes
}

// End returns the exclusive end offset of the range.
func (r Range) End() int64 { return r.Off + r.Len }

// Contains reports whether the byte range [off, off+n) lies inside r.
func (r Range) Contains(off, n int64) bool {
	return off >= r.Off && off+n <= r.End()
}

// Tracker accumulates dirty ranges.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	ranges   []Range
	pageSize int64
}

// NewTracker creates a tracker with capacity pre-allocated for 64 ranges to
// minimize allocations during typical workloads.
func NewTracker() *Tracker {
	return &Tracker{
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: standardPageSize,
	}
}

// Add records a dirty range. Zero-length ranges are ignored.
//
// This method is very fast as it only appends to a slice; summarizing is
// deferred to Bounds or Coalesced.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Bounds returns the single contiguous bounding interval of every range
// recorded since the last Reset, and whether anything is dirty at all.
//
// The interval is the union bound, not a precise set: bytes between two
// distant writes are included even though they were never touched.
func (t *Tracker) Bounds() (Range, bool) {
	if len(t.ranges) == 0 {
		return Range{}, false
	}
	lo := t.ranges[0].Off
	hi := t.ranges[0].End()
	for _, r := range t.ranges[1:] {
		if r.Off < lo {
			lo = r.Off
		}
		if r.End() > hi {
			hi = r.End()
		}
	}
	return Range{Off: lo, Len: hi - lo}, true
}

// Coalesced page-aligns all ranges, sorts them, and merges overlapping or
// adjacent ranges. Returns a new slice of non-overlapping, sorted ranges.
func (t *Tracker) Coalesced() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		// Round down start and round up end to page boundaries.
		start := (r.Off / t.pageSize) * t.pageSize
		end := r.End()
		if end%t.pageSize != 0 {
			end = ((end / t.pageSize) + 1) * t.pageSize
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			if next.End() > current.End() {
				current.Len = next.End() - current.Off
			}
		} else {
			merged = append(merged, current)
			current = next
		}
	}
	merged = append(merged, current)

	return merged
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Empty reports whether nothing has been marked dirty since the last Reset.
func (t *Tracker) Empty() bool { return len(t.ranges) == 0 }

// DebugRanges returns a copy of the raw, uncoalesced ranges (for testing).
func (t *Tracker) DebugRanges() []Range {
	result := make([]Range, len(t.ranges))
	copy(result, t.ranges)
	return result
}
