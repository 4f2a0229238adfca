//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// MapRW creates or truncates the file at path, sizes it to size bytes, and
// maps it into memory read-write. The returned cleanup unmaps the region;
// flushing modified pages is the caller's concern (msync).
func MapRW(path string, size int) ([]byte, func() error, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	if size > int(^uint(0)>>1) || size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid map size (%d bytes)", size)
	}
	if err := f.Truncate(int64(size)); err != nil {
		return nil, nil, err
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := syscall.Munmap(data)
		if errors.Is(err, syscall.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
