package heapmeta

import (
	"github.com/cockroachdb/errors"
)

// DefaultLookahead is the number of extra candidates searchlist examines
// past the first fit before committing to a block, for classes where
// best-fit (rather than first-hit) applies. The reference implementation
// hard-codes 10; a companion variant in the literature uses 5 — this
// implementation leaves it tunable.
const DefaultLookahead = 10

// ErrInvalidSize is returned when a requested allocation size is not
// positive, and by Calloc when count or size is negative or their product
// overflows.
var ErrInvalidSize = errors.New("heapmeta: invalid allocation size")

// ErrOOM is returned when satisfying a request would grow the arena past
// its configured limit.
var ErrOOM = errors.New("heapmeta: arena limit exceeded")

// ErrNotAllocated is returned by Free and Reallocate when asked to act on
// an address that is not a currently live allocation. Detecting this is
// opportunistic, not exhaustive — a corrupted or never-allocated address
// that happens to decode to a plausible-looking free block will not be
// caught here; that is the debug checker's job.
var ErrNotAllocated = errors.New("heapmeta: address is not a live allocation")

// Heap is the placement engine: it owns the segregated free-list heads
// and the prolog/epilog sentinels and implements Allocate, Free,
// Reallocate, and Calloc against an ArenaProvider. All of its state is
// instance state — unlike the reference implementation's process-wide
// globals, a process may run any number of independent Heap values
// concurrently (though each individual Heap is not itself safe for
// concurrent use; see the segalloc package for the locking wrapper).
type Heap struct {
	provider ArenaProvider

	prolog int
	epilog int

	// freeList[c] is the offset (NullOffset if empty) of the head of
	// size class c's circular doubly linked free list.
	freeList [NumClasses]uint32

	lookahead int

	allocCount int
	freeCount  int
	freeBytes  int
}

// New creates a Heap bound to the given ArenaProvider. The Heap must
// still be armed with Init before use.
func New(provider ArenaProvider) *Heap {
	return &Heap{
		provider:  provider,
		lookahead: DefaultLookahead,
	}
}

// SetLookahead overrides the best-fit lookahead bound.
func (h *Heap) SetLookahead(n int) {
	if n < 0 {
		n = 0
	}
	h.lookahead = n
}

// Init arms the heap: it installs the prolog and epilog sentinels in the
// first 16 bytes of the arena (a 4-byte alignment pad, a 4-byte prolog
// header, and a 4-byte epilog header... in practice the pad plus two
// headers plus spare rounds to 16 to keep everything 8-aligned). Init may
// be called again on an already-initialized Heap to reset it; any
// previously returned addresses are then logically invalid.
func (h *Heap) Init() error {
	base, err := h.provider.Extend(16)
	if err != nil {
		return errors.Wrap(err, "heapmeta: failed to extend arena for sentinels")
	}

	// base+0..3 is the alignment pad (never addressed as offset 0 is
	// reserved null); base+4 is the prolog, base+12 is the epilog. The
	// 4 bytes at base+8 are spare so that the epilog's payload address
	// (epilog+4 == base+16) is 8-aligned, matching every other block.
	h.provider.PutUint32(base, 0)
	h.prolog = base + 4
	h.epilog = base + 12
	setHeaderAt(h.provider, h.prolog, packHeader(0, true, false, false))
	setHeaderAt(h.provider, h.epilog, packHeader(0, true, false, false))

	for i := range h.freeList {
		h.freeList[i] = arenaNullOffset
	}
	h.allocCount = 0
	h.freeCount = 0
	h.freeBytes = 0

	h.debugCheck()
	return nil
}

// arenaNullOffset mirrors arena.NullOffset without importing the arena
// package, keeping heapmeta decoupled from any one ArenaProvider
// implementation.
const arenaNullOffset uint32 = 0

// Prolog and Epilog expose the sentinel addresses, primarily for the
// consistency checker and diagnostics.
func (h *Heap) Prolog() int { return h.prolog }
func (h *Heap) Epilog() int { return h.epilog }

// AllocationCount returns the number of live allocations.
func (h *Heap) AllocationCount() int { return h.allocCount }

// SumFreeSize returns the total free payload bytes across all free-list
// blocks (not counting header/footer overhead).
func (h *Heap) SumFreeSize() int { return h.freeBytes }

// FreeRegionsCount returns the number of distinct free blocks.
func (h *Heap) FreeRegionsCount() int { return h.freeCount }
