package dirty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerBounds(t *testing.T) {
	tr := NewTracker()

	_, ok := tr.Bounds()
	assert.False(t, ok, "fresh tracker is clean")

	tr.Add(100, 50)
	r, ok := tr.Bounds()
	require.True(t, ok)
	assert.Equal(t, Range{Off: 100, Len: 50}, r)

	// A second distant write widens the bounding interval, bytes in between
	// included (single contiguous over-approximation).
	tr.Add(1000, 10)
	r, ok = tr.Bounds()
	require.True(t, ok)
	assert.Equal(t, Range{Off: 100, Len: 910}, r)

	// A write inside the interval changes nothing.
	tr.Add(200, 8)
	r, _ = tr.Bounds()
	assert.Equal(t, Range{Off: 100, Len: 910}, r)

	// A write before the interval extends it downward.
	tr.Add(10, 4)
	r, _ = tr.Bounds()
	assert.Equal(t, Range{Off: 10, Len: 1000}, r)
}

func TestTrackerZeroLengthIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Add(10, 0)
	tr.Add(10, -5)
	assert.True(t, tr.Empty())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Add(0, 128)
	tr.Reset()

	assert.True(t, tr.Empty())
	_, ok := tr.Bounds()
	assert.False(t, ok)
}

func TestTrackerCoalesced(t *testing.T) {
	tr := NewTracker()

	// Two ranges inside the same page merge into one page.
	tr.Add(100, 200)
	tr.Add(700, 100)
	ranges := tr.Coalesced()
	require.Len(t, ranges, 1)
	assert.Equal(t, Range{Off: 0, Len: 4096}, ranges[0])

	// A range in a distant page stays separate.
	tr.Add(3*4096+5, 10)
	ranges = tr.Coalesced()
	require.Len(t, ranges, 2)
	assert.Equal(t, Range{Off: 3 * 4096, Len: 4096}, ranges[1])

	// Adjacent pages merge.
	tr.Add(4096, 1)
	ranges = tr.Coalesced()
	require.Len(t, ranges, 2)
	assert.Equal(t, Range{Off: 0, Len: 2 * 4096}, ranges[0])
}

func TestTrackerCoalescedCrossingPageBoundary(t *testing.T) {
	tr := NewTracker()
	tr.Add(4090, 12) // straddles the first page boundary
	ranges := tr.Coalesced()
	require.Len(t, ranges, 1)
	assert.Equal(t, Range{Off: 0, Len: 2 * 4096}, ranges[0])
}

func TestRangeContains(t *testing.T) {
	r := Range{Off: 10, Len: 20}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(15, 5))
	assert.False(t, r.Contains(5, 10))
	assert.False(t, r.Contains(25, 10))
}

// The tracked region always contains every byte actually written since the
// last reset.
func TestBoundsContainEveryWrite(t *testing.T) {
	tr := NewTracker()
	writes := []Range{{3, 9}, {4000, 1}, {512, 512}, {77, 2}}
	for _, w := range writes {
		tr.Add(int(w.Off), int(w.Len))
	}
	bounds, ok := tr.Bounds()
	require.True(t, ok)
	for _, w := range writes {
		assert.True(t, bounds.Contains(w.Off, w.Len), "write %+v not covered", w)
	}
}
