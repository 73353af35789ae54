package heapmeta

// ArenaProvider is the narrow surface the placement engine needs from its
// backing store: the ability to grow the arena and query its bounds, plus
// raw little-endian word access and an overlap-safe move, centralized so
// nothing in this package does pointer arithmetic on a real byte slice
// directly. The concrete *arena.Arena satisfies this interface; tests can
// substitute a mock to exercise engine logic without a real backing
// buffer.
type ArenaProvider interface {
	// Extend grows the arena by n bytes and returns the address of the
	// first new byte.
	Extend(n int) (int, error)
	// Lo returns the arena's base address.
	Lo() int
	// Hi returns the arena's current inclusive upper bound.
	Hi() int
	// Size returns the arena's current byte count.
	Size() int
	// Limit returns the configured byte cap.
	Limit() int
	// InHeap reports whether addr lies within the arena's current range.
	InHeap(addr int) bool

	// ToOffset compresses an absolute address into a 32-bit offset from
	// the arena's base.
	ToOffset(addr int) uint32
	// ToAddr expands a 32-bit offset back into an absolute address.
	ToAddr(off uint32) int

	// GetUint32 reads the little-endian uint32 at addr.
	GetUint32(addr int) uint32
	// PutUint32 writes v as a little-endian uint32 at addr.
	PutUint32(addr int, v uint32)
	// Move copies n bytes from srcAddr to dstAddr, tolerating overlap.
	Move(dstAddr, srcAddr, n int)
	// Zero clears n bytes starting at addr.
	Zero(addr, n int)
}
