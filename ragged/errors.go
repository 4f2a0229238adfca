package ragged

import "github.com/vispack/veckit/dtype"

var (
	// ErrIndexRange indicates an item index outside [0, Len()).
	ErrIndexRange = &dtype.Error{Kind: dtype.ErrKindRange, Msg: "ragged: item index out of range"}
	// ErrPartition indicates flat data whose length does not match the requested item sizes.
	ErrPartition = &dtype.Error{Kind: dtype.ErrKindPartition, Msg: "ragged: cannot partition data as requested"}
	// ErrItemSize indicates an in-place item write whose length differs from the item.
	ErrItemSize = &dtype.Error{Kind: dtype.ErrKindType, Msg: "ragged: replacement item has wrong length"}
	// ErrBroadcast indicates a per-item operand whose length differs from the item count.
	ErrBroadcast = &dtype.Error{Kind: dtype.ErrKindPartition, Msg: "ragged: operand count does not match item count"}
	// ErrNotSizeable indicates an append/insert/remove on a fixed-shape list.
	ErrNotSizeable = &dtype.Error{Kind: dtype.ErrKindState, Msg: "ragged: list is not sizeable"}
	// ErrNotWriteable indicates an element write on a read-only list.
	ErrNotWriteable = &dtype.Error{Kind: dtype.ErrKindState, Msg: "ragged: list is not writeable"}
)
