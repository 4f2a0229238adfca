//go:build !unix

// Package mmfile provides platform-specific helpers for mapping scratch
// files read-write.
package mmfile

import "os"

// MapRW returns an in-memory slice when mmap is not available. The cleanup
// writes the slice back to the file so contents survive the session.
func MapRW(path string, size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	if existing, err := os.ReadFile(path); err == nil {
		copy(data, existing)
	}
	cleanup := func() error {
		return os.WriteFile(path, data, 0o644)
	}
	return data, cleanup, nil
}
