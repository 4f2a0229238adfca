// Package dtype describes the fixed-size element types that the buffer
// packages operate on, and defines the typed errors they share.
//
// A Type pairs an element Kind with its byte size, the way a numeric array
// describes its storage: a buffer of n Float64 elements occupies exactly
// n * Float64.Size() bytes. Typed accessors on views use the Type to refuse
// decodes that do not match the underlying element kind.
package dtype
