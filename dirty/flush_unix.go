//go:build linux || freebsd

package dirty

import (
	"golang.org/x/sys/unix"
)

// flushRange msyncs the pages covering [off, off+n) of the device mapping.
//
// On Linux and FreeBSD msync() accepts sub-slices of the mapping as long as
// the start address is page-aligned, so only the touched pages are synced.
func (d *FileDevice) flushRange(off, n int64) error {
	start := (off / standardPageSize) * standardPageSize
	end := off + n
	if end > int64(len(d.data)) {
		end = int64(len(d.data))
	}
	if start >= end {
		return nil
	}
	return unix.Msync(d.data[start:end], unix.MS_SYNC)
}
