// Package arena implements the growable backing store for the segregated
// free-list allocator in heapmeta: a single contiguous, monotonically
// growing byte region addressed by absolute, base-relative addresses, plus
// the offset machine that compresses those addresses into the 32-bit
// offsets the allocator embeds inside block headers and free-list links.
package arena

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// LimitError is returned by Extend when growing the arena would exceed its
// configured byte limit.
var LimitError = errors.New("arena: extend would exceed byte limit")

// NullOffset is the reserved offset value meaning "no pointer". The first
// four bytes of every arena are an unused alignment pad specifically so
// that no live block ever lives at offset 0.
const NullOffset uint32 = 0

// DefaultLimit is the hard cap on arena size used by the reference
// allocator: 100 MiB.
const DefaultLimit = 0x6400000

// Arena owns a growable byte buffer rooted at an arbitrary, fixed base
// address. All intra-heap references the allocator stores are 32-bit
// offsets from that base; Arena is the single place that knows how to
// convert between the two, and the single place that touches the backing
// buffer directly.
type Arena struct {
	base  int
	limit int
	data  []byte
}

// New creates an empty Arena rooted at base, capped at limit bytes. base
// need not be zero; it models whatever address a real host happened to
// hand back for the backing mapping. The Arena itself accepts any base,
// but heapmeta lays its blocks out relative to base, so the payload
// addresses it returns are 8-aligned only when base is a multiple of 8.
func New(base int, limit int) *Arena {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Arena{base: base, limit: limit}
}

// Lo returns the arena's base address.
func (a *Arena) Lo() int { return a.base }

// Hi returns the current inclusive upper bound of the arena, or Lo()-1 if
// the arena is empty.
func (a *Arena) Hi() int { return a.base + len(a.data) - 1 }

// Size returns the current byte count of the arena.
func (a *Arena) Size() int { return len(a.data) }

// Limit returns the configured byte cap.
func (a *Arena) Limit() int { return a.limit }

// SetLimit overrides the byte cap, primarily so tests can exercise the OOM
// path without growing to DefaultLimit.
func (a *Arena) SetLimit(limit int) { a.limit = limit }

// Extend grows the arena by n bytes and returns the address of the first
// new byte. It fails with LimitError if doing so would exceed the
// configured limit.
func (a *Arena) Extend(n int) (int, error) {
	if n < 0 {
		return 0, errors.Newf("arena: cannot extend by negative size %d", n)
	}
	if len(a.data)+n > a.limit {
		return 0, LimitError
	}
	addr := a.base + len(a.data)
	a.data = append(a.data, make([]byte, n)...)
	return addr, nil
}

// InHeap reports whether addr lies within the arena's current live range.
func (a *Arena) InHeap(addr int) bool {
	return addr >= a.base && addr <= a.Hi()
}

func (a *Arena) index(addr int) int {
	return addr - a.base
}

// ToOffset converts an absolute address into the 32-bit offset-from-base
// form stored inside block headers and free-list links. addr == 0 is
// reserved to mean "no address" and maps to NullOffset; any other address
// outside the arena is a programmer error and panics, since it would
// silently corrupt the heap if allowed through.
func (a *Arena) ToOffset(addr int) uint32 {
	if addr == 0 {
		return NullOffset
	}
	if !a.InHeap(addr) {
		panic(errors.Newf("arena: address %d is not within [%d, %d]", addr, a.base, a.Hi()))
	}
	return uint32(addr - a.base)
}

// ToAddr converts a 32-bit offset-from-base back into an absolute address.
// NullOffset maps to 0.
func (a *Arena) ToAddr(off uint32) int {
	if off == NullOffset {
		return 0
	}
	return a.base + int(off)
}

// GetUint32 reads the little-endian uint32 stored at addr.
func (a *Arena) GetUint32(addr int) uint32 {
	i := a.index(addr)
	return binary.LittleEndian.Uint32(a.data[i : i+4])
}

// PutUint32 writes v as a little-endian uint32 at addr.
func (a *Arena) PutUint32(addr int, v uint32) {
	i := a.index(addr)
	binary.LittleEndian.PutUint32(a.data[i:i+4], v)
}

// Move copies n bytes from srcAddr to dstAddr, tolerating overlap in
// either direction (it is the allocator's memmove). Go's builtin copy
// already has memmove semantics for slices of the same underlying array,
// so this is a thin, named wrapper kept here to centralize all direct
// access to the backing buffer in one type.
func (a *Arena) Move(dstAddr, srcAddr, n int) {
	if n <= 0 {
		return
	}
	di, si := a.index(dstAddr), a.index(srcAddr)
	copy(a.data[di:di+n], a.data[si:si+n])
}

// Zero clears n bytes starting at addr.
func (a *Arena) Zero(addr, n int) {
	if n <= 0 {
		return
	}
	i := a.index(addr)
	clearRange := a.data[i : i+n]
	for j := range clearRange {
		clearRange[j] = 0
	}
}
