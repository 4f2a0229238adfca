package dtype

// Kind enumerates the supported element kinds. All kinds have a fixed byte
// size; variable-size elements are out of scope.
type Kind int

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var kindSizes = [...]int{
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	Uint8:   1,
	Uint16:  2,
	Uint32:  4,
	Uint64:  8,
	Float32: 4,
	Float64: 8,
}

var kindNames = [...]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Type describes the element type of a buffer.
type Type struct {
	kind Kind
}

// New returns the Type for the given kind.
func New(k Kind) Type { return Type{kind: k} }

// Kind returns the element kind.
func (t Type) Kind() Kind { return t.kind }

// Size returns the element size in bytes.
func (t Type) Size() int {
	if int(t.kind) < 0 || int(t.kind) >= len(kindSizes) {
		return 0
	}
	return kindSizes[t.kind]
}

func (t Type) String() string {
	if int(t.kind) < 0 || int(t.kind) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[t.kind]
}

// Element is the set of Go types a typed buffer can hold.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Of returns the Type descriptor for a Go element type.
func Of[T Element]() Type {
	var z T
	switch any(z).(type) {
	case int8:
		return New(Int8)
	case int16:
		return New(Int16)
	case int32:
		return New(Int32)
	case int64:
		return New(Int64)
	case uint8:
		return New(Uint8)
	case uint16:
		return New(Uint16)
	case uint32:
		return New(Uint32)
	case uint64:
		return New(Uint64)
	case float32:
		return New(Float32)
	default:
		return New(Float64)
	}
}
