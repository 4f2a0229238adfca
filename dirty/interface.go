package dirty

// DirtyTracker is the minimal interface for recording dirty (modified) byte
// ranges. It is intended for components that only need to notify about
// modifications but don't manage synchronization themselves (views, writers,
// kernels that scribble on a buffer).
type DirtyTracker interface {
	// Add marks a byte range as dirty.
	// off is the offset from the start of the base allocation, length is the
	// number of bytes.
	Add(off, length int)
}

// Uploader is the consumer side of the hand-off contract: it receives the
// dirty byte range of a buffer and mirrors it on the external device.
// Implementations must copy or transmit p before returning.
type Uploader interface {
	// Upload mirrors p at byte offset off of the device-side allocation.
	Upload(off int64, p []byte) error
}
