package ragged

import (
	"fmt"

	"github.com/vispack/veckit/vecop"
)

// Broadcast arithmetic applies an operator to every element of every item in
// one pass over the flat buffer. Items keep their shapes; nothing is
// concatenated or reallocated.

// AddScalar adds v to every element of every item.
func (l *List[T]) AddScalar(v T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	vecop.AddScalar(l.data[:l.used], v)
	return nil
}

// MulScalar multiplies every element of every item by v.
func (l *List[T]) MulScalar(v T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	vecop.Scale(l.data[:l.used], v)
	return nil
}

// Map applies fn to every element of every item.
func (l *List[T]) Map(fn func(T) T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	vecop.Map(l.data[:l.used], fn)
	return nil
}

// AddPerItem adds vs[i] to every element of item i, broadcasting one scalar
// across each ragged row. Returns ErrBroadcast when len(vs) != Len().
func (l *List[T]) AddPerItem(vs []T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	if len(vs) != l.count {
		return fmt.Errorf("%d operands for %d items: %w", len(vs), l.count, ErrBroadcast)
	}
	for i := 0; i < l.count; i++ {
		s := l.items[i]
		vecop.AddScalar(l.data[s.start:s.end], vs[i])
	}
	return nil
}

// MulPerItem multiplies every element of item i by vs[i].
func (l *List[T]) MulPerItem(vs []T) error {
	if !l.opts.Writeable {
		return ErrNotWriteable
	}
	if len(vs) != l.count {
		return fmt.Errorf("%d operands for %d items: %w", len(vs), l.count, ErrBroadcast)
	}
	for i := 0; i < l.count; i++ {
		s := l.items[i]
		vecop.Scale(l.data[s.start:s.end], vs[i])
	}
	return nil
}

// SumPerItem returns the sum of each item's elements.
func (l *List[T]) SumPerItem() []T {
	sums := make([]T, l.count)
	for i := 0; i < l.count; i++ {
		s := l.items[i]
		sums[i] = vecop.Sum(l.data[s.start:s.end])
	}
	return sums
}
