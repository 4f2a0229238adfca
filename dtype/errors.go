package dtype

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindType      ErrKind = iota // requested decode doesn't match the element Type
	ErrKindRange                    // index or byte range outside the buffer
	ErrKindPartition                // data cannot be partitioned as requested
	ErrKindState                    // invalid operation for current state (e.g., read-only)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two *Error values by Kind, so sentinels work with errors.Is even
// when an intermediate layer wrapped them with extra context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by the buffer packages.
var (
	// ErrType indicates a typed access that does not match the element kind.
	ErrType = &Error{Kind: ErrKindType, Msg: "element type mismatch"}
	// ErrRange indicates an index or byte range outside the buffer.
	ErrRange = &Error{Kind: ErrKindRange, Msg: "index out of range"}
	// ErrPartition indicates data that cannot be split into the requested item sizes.
	ErrPartition = &Error{Kind: ErrKindPartition, Msg: "cannot partition data as requested"}
	// ErrReadOnly indicates a mutation on a read-only buffer or list.
	ErrReadOnly = &Error{Kind: ErrKindState, Msg: "buffer is read-only"}
)
