// Package buf contains bounds and endian helpers shared by the typed buffer
// packages.
package buf

import (
	"encoding/binary"
	"math"
)

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// F64LE reads a little-endian IEEE 754 float64 from b. Returns 0 when b is too short.
func F64LE(b []byte) float64 {
	if len(b) < 8 {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// PutU32LE writes v to b in little-endian order. No-op when b is too short.
func PutU32LE(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}

// PutI32LE writes v to b in little-endian order. No-op when b is too short.
func PutI32LE(b []byte, v int32) {
	PutU32LE(b, uint32(v))
}

// PutF64LE writes v to b in little-endian order. No-op when b is too short.
func PutF64LE(b []byte, v float64) {
	if len(b) < 8 {
		return
	}
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}
