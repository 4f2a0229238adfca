package ragged

import (
	"fmt"
	"strings"

	"github.com/vispack/veckit/dtype"
	"github.com/vispack/veckit/internal/buf"
)

const (
	// initialElemCapacity is the element capacity of an empty list.
	initialElemCapacity = 512

	// initialItemCapacity is the item-table capacity of an empty list.
	initialItemCapacity = 64
)

// span is one item's half-open element range within the flat buffer.
type span struct {
	start int
	end   int
}

// Options controls mutability of a List.
type Options struct {
	// Sizeable permits append/insert/remove. Default true.
	Sizeable bool
	// Writeable permits in-place element writes. Default true.
	Writeable bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Sizeable: true, Writeable: true}
}

// List is a strongly typed list of variable-length items stored in one flat
// buffer. The zero value is not usable; construct with New or a From helper.
type List[T dtype.Element] struct {
	data  []T    // flat element storage; occupied prefix is data[:used]
	used  int    // elements in use
	items []span // item table; occupied prefix is items[:count]
	count int    // items in use
	opts  Options
}

// New returns an empty list.
func New[T dtype.Element](opts ...Options) *List[T] {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return &List[T]{
		data:  make([]T, initialElemCapacity),
		items: make([]span, initialItemCapacity),
		opts:  o,
	}
}

// FromFlat builds a list by partitioning flat data into items of the given
// sizes. Returns ErrPartition when the sizes do not tile data exactly or any
// size is negative. The data is copied.
func FromFlat[T dtype.Element](data []T, sizes []int) (*List[T], error) {
	total := 0
	for _, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("negative item size %d: %w", s, ErrPartition)
		}
		total += s
	}
	if total != len(data) {
		return nil, fmt.Errorf("sizes sum to %d, data has %d elements: %w", total, len(data), ErrPartition)
	}

	l := New[T]()
	if err := l.AppendFlat(data, sizes); err != nil {
		return nil, err
	}
	return l, nil
}

// FromUniform builds a list by splitting flat data into items of equal size.
// Returns ErrPartition when len(data) is not a multiple of size.
func FromUniform[T dtype.Element](data []T, size int) (*List[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("item size %d: %w", size, ErrPartition)
	}
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%d elements into items of %d: %w", len(data), size, ErrPartition)
	}
	sizes := make([]int, len(data)/size)
	for i := range sizes {
		sizes[i] = size
	}
	return FromFlat(data, sizes)
}

// FromSlices builds a list from a slice of items. Items are copied.
func FromSlices[T dtype.Element](items [][]T) *List[T] {
	l := New[T]()
	for _, it := range items {
		// Append only fails on state errors; a fresh list is sizeable.
		_ = l.Append(it)
	}
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int { return l.count }

// Size returns the total number of elements across all items.
func (l *List[T]) Size() int { return l.used }

// Type returns the element type descriptor.
func (l *List[T]) Type() dtype.Type { return dtype.Of[T]() }

// Data returns the occupied prefix of the flat buffer. The slice aliases the
// list's storage and is invalidated by the next sizing mutation.
func (l *List[T]) Data() []T { return l.data[:l.used] }

// ItemSizes returns the length of every item in order.
func (l *List[T]) ItemSizes() []int {
	sizes := make([]int, l.count)
	for i := 0; i < l.count; i++ {
		sizes[i] = l.items[i].end - l.items[i].start
	}
	return sizes
}

// normIndex resolves a possibly negative item index against limit.
// limit is Len() for access and Len()+1 positions for insertion.
func (l *List[T]) normIndex(i, limit int) (int, error) {
	if i < 0 {
		i += l.count
	}
	if i < 0 || i >= limit {
		return 0, fmt.Errorf("index %d with %d items: %w", i, l.count, ErrIndexRange)
	}
	return i, nil
}

// At returns item i. Negative indices count from the end. The returned slice
// aliases the flat buffer; it is valid until the next sizing mutation.
func (l *List[T]) At(i int) ([]T, error) {
	i, err := l.normIndex(i, l.count)
	if err != nil {
		return nil, err
	}
	s := l.items[i]
	return l.data[s.start:s.end:s.end], nil
}

// Slice returns the contiguous elements spanning items [i, j). As with At,
// the result aliases the flat buffer.
func (l *List[T]) Slice(i, j int) ([]T, error) {
	if i < 0 {
		i += l.count
	}
	if j < 0 {
		j += l.count
	}
	if i > j {
		i, j = j, i
	}
	if i < 0 || j > l.count {
		return nil, fmt.Errorf("slice [%d:%d] with %d items: %w", i, j, l.count, ErrIndexRange)
	}
	if i == j {
		return l.data[0:0], nil
	}
	start := l.items[i].start
	end := l.items[j-1].end
	return l.data[start:end:end], nil
}

// SetAt overwrites item i in place. The replacement must have exactly the
// item's length; use Remove+Insert to change an item's size.
func (l *List[T]) SetAt(i int, v []T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	i, err := l.normIndex(i, l.count)
	if err != nil {
		return err
	}
	s := l.items[i]
	if len(v) != s.end-s.start {
		return fmt.Errorf("item %d has %d elements, got %d: %w", i, s.end-s.start, len(v), ErrItemSize)
	}
	copy(l.data[s.start:s.end], v)
	return nil
}

// Append adds one item at the end.
func (l *List[T]) Append(item []T) error {
	return l.Insert(l.count, item)
}

// AppendFlat adds several items at once from flat data partitioned by sizes.
// Returns ErrPartition when the sizes do not tile data exactly.
func (l *List[T]) AppendFlat(data []T, sizes []int) error {
	if !l.opts.Sizeable {
		return ErrNotSizeable
	}
	total := 0
	for _, s := range sizes {
		if s < 0 {
			return fmt.Errorf("negative item size %d: %w", s, ErrPartition)
		}
		total += s
	}
	if total != len(data) {
		return fmt.Errorf("sizes sum to %d, data has %d elements: %w", total, len(data), ErrPartition)
	}

	l.growData(total)
	l.growItems(len(sizes))

	copy(l.data[l.used:], data)
	off := l.used
	for _, s := range sizes {
		l.items[l.count] = span{start: off, end: off + s}
		l.count++
		off += s
	}
	l.used += total
	return nil
}

// Insert places item before index i. Negative indices count from the end;
// i == Len() appends. Elements after the insertion point shift up, and every
// later span moves by len(item). Buffer and table are updated together, so a
// caller never observes a partial insert.
func (l *List[T]) Insert(i int, item []T) error {
	if !l.opts.Sizeable {
		return ErrNotSizeable
	}
	if i < 0 {
		i += l.count
	}
	if i < 0 || i > l.count {
		return fmt.Errorf("insert at %d with %d items: %w", i, l.count, ErrIndexRange)
	}

	size := len(item)
	l.growData(size)
	l.growItems(1)

	var start int
	if i < l.count {
		start = l.items[i].start
		// Shift elements up to open a gap of len(item).
		copy(l.data[start+size:l.used+size], l.data[start:l.used])
		// Shift spans up and move them by the gap size.
		for k := l.count; k > i; k-- {
			s := l.items[k-1]
			l.items[k] = span{start: s.start + size, end: s.end + size}
		}
	} else {
		start = l.used
	}

	copy(l.data[start:start+size], item)
	l.items[i] = span{start: start, end: start + size}
	l.count++
	l.used += size
	return nil
}

// Remove deletes item i. Negative indices count from the end.
func (l *List[T]) Remove(i int) error {
	if i < 0 {
		i += l.count
	}
	if i < 0 || i >= l.count {
		return fmt.Errorf("remove at %d with %d items: %w", i, l.count, ErrIndexRange)
	}
	return l.RemoveRange(i, i+1)
}

// RemoveRange deletes items [i, j). The element gap closes and every later
// span shifts down by the removed element count.
func (l *List[T]) RemoveRange(i, j int) error {
	if !l.opts.Sizeable {
		return ErrNotSizeable
	}
	if i < 0 {
		i += l.count
	}
	if j < 0 {
		j += l.count
	}
	if i > j {
		i, j = j, i
	}
	if i < 0 || j > l.count {
		return fmt.Errorf("remove [%d:%d] with %d items: %w", i, j, l.count, ErrIndexRange)
	}
	if i == j {
		return nil
	}

	dstart := l.items[i].start
	dstop := l.items[j-1].end
	removed := dstop - dstart

	copy(l.data[dstart:], l.data[dstop:l.used])
	for k := j; k < l.count; k++ {
		s := l.items[k]
		l.items[k-(j-i)] = span{start: s.start - removed, end: s.end - removed}
	}
	l.count -= j - i
	l.used -= removed
	return nil
}

// Clear removes every item but keeps the allocated capacity.
func (l *List[T]) Clear() error {
	if !l.opts.Sizeable {
		return ErrNotSizeable
	}
	l.used = 0
	l.count = 0
	return nil
}

// String renders the list as "[ [0] [1 2] [3 4 5] ]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < l.count; i++ {
		s := l.items[i]
		fmt.Fprintf(&sb, "%v ", l.data[s.start:s.end])
	}
	sb.WriteString("]")
	return sb.String()
}

// growData ensures capacity for need more elements, doubling to the next
// power of two when the buffer would overflow.
func (l *List[T]) growData(need int) {
	if l.used+need <= len(l.data) {
		return
	}
	capacity := buf.NextPow2(l.used + need)
	grown := make([]T, capacity)
	copy(grown, l.data[:l.used])
	l.data = grown
}

// growItems ensures capacity for need more spans.
func (l *List[T]) growItems(need int) {
	if l.count+need <= len(l.items) {
		return
	}
	capacity := buf.NextPow2(l.count + need)
	grown := make([]span, capacity)
	copy(grown, l.items[:l.count])
	l.items = grown
}
