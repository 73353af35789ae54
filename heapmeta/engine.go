package heapmeta

import "github.com/cockroachdb/errors"

// The placement engine: Allocate, Free, Reallocate, and Calloc, plus the
// internal searchlist/carve/found helpers they share.

// Allocate returns the payload address of a new block of at least n
// bytes, 8-byte aligned. It fails with ErrInvalidSize if n <= 0, and with
// ErrOOM if satisfying the request would grow the arena past its limit.
func (h *Heap) Allocate(n int) (int, error) {
	h.debugCheck()
	defer h.debugCheck()

	if n <= 0 {
		return 0, ErrInvalidSize
	}

	size := normalizeSize(n)
	class := sizeClass(size)

	if addr := h.searchlist(class, size); addr != 0 {
		return addr, nil
	}

	if class != classCatchAll {
		if addr := h.searchlist(classCatchAll, size); addr != 0 {
			return addr, nil
		}
	}

	return h.extend(size)
}

// extend grows the arena for a block that didn't fit any existing free
// list: the former epilog becomes the new block's header (inheriting its
// hint bits), and a fresh epilog is written at the new top of the heap.
func (h *Heap) extend(size int) (int, error) {
	grow := size + 8
	if h.provider.Size()+grow > h.provider.Limit() {
		return 0, ErrOOM
	}

	newBlock := h.epilog
	oldEpilogWord := headerAt(h.provider, newBlock)
	if _, err := h.provider.Extend(grow); err != nil {
		return 0, errors.Wrap(err, "heapmeta: failed to extend arena")
	}

	inherited := oldEpilogWord & (pfixedBit | szclassBit)
	setHeaderAt(h.provider, newBlock, uint32(size)|allocBit|inherited)

	newEpilog := newBlock + size + 8
	setHeaderAt(h.provider, newEpilog, packHeader(0, true, false, false))
	h.epilog = newEpilog

	h.mark(newBlock)
	h.allocCount++

	return newBlock + 4, nil
}

// searchlist looks for a free block big enough for size in class c's
// list. For classes below classBestFitStart, the list head is returned
// immediately (first-hit, since small-class entries are uniform or
// near-uniform in size); otherwise it walks the list applying bounded
// best-fit with a lookahead window. It returns 0 on a miss.
func (h *Heap) searchlist(class int, size int) int {
	start := h.listHead(class)
	if start == 0 {
		return 0
	}

	if class < classBestFitStart {
		return h.found(start)
	}

	n := start
	for n != 0 {
		best := headerSize(headerAt(h.provider, n))
		if best >= size {
			bestBlock := n
			m := h.provider.ToAddr(h.listNextOff(n))
			for count := 0; count < h.lookahead && m != 0 && m != start; count++ {
				candidate := headerSize(headerAt(h.provider, m))
				if candidate < best && candidate >= size {
					best = candidate
					bestBlock = m
				}
				m = h.provider.ToAddr(h.listNextOff(m))
			}

			if best-size >= 16 {
				return h.carve(bestBlock, size, best-size-8)
			}
			return h.found(bestBlock)
		}

		next := h.provider.ToAddr(h.listNextOff(n))
		if next == start {
			break
		}
		n = next
	}

	return 0
}

// carve splits a free block into a low part allocated at exactly
// request bytes and a high (remainder) part of remainderPayload bytes,
// returned to its (possibly new) free list.
func (h *Heap) carve(victim, request, remainderPayload int) int {
	h.remove(victim)

	hints := headerAt(h.provider, victim) & (pfixedBit | szclassBit)
	setHeaderAt(h.provider, victim, uint32(request)|allocBit|hints)
	h.mark(victim)

	high := h.blockNext(victim)
	// mark(victim) may just have written PFIXED/SZCLASS into high's
	// header if victim's new class elides a footer; read those bits
	// back so they're preserved rather than clobbered.
	preserved := headerAt(h.provider, high) & (pfixedBit | szclassBit)
	setHeaderAt(h.provider, high, uint32(remainderPayload)|preserved)
	h.mark(high)
	h.add(high)

	h.allocCount++
	return victim + 4
}

// found commits a whole free block to an allocation with no split.
func (h *Heap) found(b int) int {
	h.remove(b)
	word := headerAt(h.provider, b) | allocBit
	setHeaderAt(h.provider, b, word)
	h.mark(b)
	h.allocCount++
	return b + 4
}

// Free releases the allocation at addr, a payload address previously
// returned by Allocate or Reallocate. addr == 0 is a no-op. It coalesces
// with up to two physically adjacent free neighbors.
func (h *Heap) Free(addr int) error {
	if addr == 0 {
		return nil
	}

	h.debugCheck()
	defer h.debugCheck()

	hdr := addr - 4
	if !h.isLiveAllocation(hdr) {
		return ErrNotAllocated
	}

	word := headerAt(h.provider, hdr) &^ allocBit
	setHeaderAt(h.provider, hdr, word)
	h.allocCount--

	prev := h.blockPrev(hdr)
	next := h.blockNext(hdr)
	prevFree := prev != 0 && headerIsFree(headerAt(h.provider, prev))
	nextFree := next != 0 && headerIsFree(headerAt(h.provider, next))

	switch {
	case !prevFree && !nextFree:
		h.add(hdr)

	case !prevFree && nextFree:
		h.remove(next)
		combined := headerSize(word) + headerSize(headerAt(h.provider, next)) + 8
		hints := headerAt(h.provider, hdr) & (pfixedBit | szclassBit)
		setHeaderAt(h.provider, hdr, uint32(combined)|hints)
		h.mark(hdr)
		h.add(hdr)

	case prevFree && !nextFree:
		h.remove(prev)
		combined := headerSize(headerAt(h.provider, prev)) + headerSize(word) + 8
		hints := headerAt(h.provider, prev) & (pfixedBit | szclassBit)
		setHeaderAt(h.provider, prev, uint32(combined)|hints)
		h.mark(prev)
		h.add(prev)

	default: // both free
		h.remove(prev)
		h.remove(next)
		combined := headerSize(headerAt(h.provider, prev)) + headerSize(word) + headerSize(headerAt(h.provider, next)) + 16
		hints := headerAt(h.provider, prev) & (pfixedBit | szclassBit)
		setHeaderAt(h.provider, prev, uint32(combined)|hints)
		h.mark(prev)
		h.add(prev)
	}

	return nil
}

// Reallocate resizes the allocation at addr to n bytes: size 0 frees addr
// and returns 0; addr == 0 allocates fresh; an unchanged normalized size
// is a no-op; otherwise the engine attempts an in-place grow by absorbing
// free physical neighbors before falling back to allocate-copy-free.
func (h *Heap) Reallocate(addr int, n int) (int, error) {
	if n == 0 {
		return 0, h.Free(addr)
	}
	if addr == 0 {
		return h.Allocate(n)
	}
	if n < 0 {
		return 0, ErrInvalidSize
	}

	h.debugCheck()
	defer h.debugCheck()

	hdr := addr - 4
	if !h.isLiveAllocation(hdr) {
		return 0, ErrNotAllocated
	}

	newSize := normalizeSize(n)
	oldSize := headerSize(headerAt(h.provider, hdr))
	if oldSize == newSize {
		return addr, nil
	}

	prev := h.blockPrev(hdr)
	next := h.blockNext(hdr)
	prevFree := prev != 0 && headerIsFree(headerAt(h.provider, prev))
	nextFree := next != 0 && headerIsFree(headerAt(h.provider, next))

	if nextFree {
		nextSize := headerSize(headerAt(h.provider, next))
		if prevFree {
			prevSize := headerSize(headerAt(h.provider, prev))
			if combined := prevSize + oldSize + nextSize + 16; combined >= newSize {
				h.remove(prev)
				h.remove(next)
				hints := headerAt(h.provider, prev) & (pfixedBit | szclassBit)
				setHeaderAt(h.provider, prev, uint32(combined)|allocBit|hints)
				h.mark(prev)
				h.provider.Move(prev+4, addr, min(oldSize, newSize))
				return prev + 4, nil
			}
		} else if combined := oldSize + nextSize + 8; combined >= newSize {
			h.remove(next)
			hints := headerAt(h.provider, hdr) & (pfixedBit | szclassBit)
			setHeaderAt(h.provider, hdr, uint32(combined)|allocBit|hints)
			h.mark(hdr)
			return addr, nil
		}
	} else if prevFree {
		prevSize := headerSize(headerAt(h.provider, prev))
		if combined := prevSize + oldSize + 8; combined >= newSize {
			h.remove(prev)
			hints := headerAt(h.provider, prev) & (pfixedBit | szclassBit)
			setHeaderAt(h.provider, prev, uint32(combined)|allocBit|hints)
			h.mark(prev)
			h.provider.Move(prev+4, addr, min(oldSize, newSize))
			return prev + 4, nil
		}
	}

	return h.relocate(addr, oldSize, newSize)
}

// relocate performs an allocate-copy-free reallocation for requests that
// couldn't be satisfied in place.
func (h *Heap) relocate(addr, oldSize, newSize int) (int, error) {
	newAddr, err := h.Allocate(newSize)
	if err != nil {
		return 0, err
	}
	h.provider.Move(newAddr, addr, min(oldSize, newSize))
	if err := h.Free(addr); err != nil {
		return 0, err
	}
	return newAddr, nil
}

// Calloc allocates count*size bytes and zeroes the payload. The
// count*size product is overflow-checked and rejected rather than
// silently wrapping.
func (h *Heap) Calloc(count, size int) (int, error) {
	defer h.debugCheck()

	if count < 0 || size < 0 {
		return 0, ErrInvalidSize
	}

	total, overflowed := safeMul(count, size)
	if overflowed {
		return 0, ErrInvalidSize
	}

	addr, err := h.Allocate(total)
	if err != nil {
		return 0, err
	}

	payloadSize := headerSize(headerAt(h.provider, addr-4))
	h.provider.Zero(addr, payloadSize)
	return addr, nil
}

// isLiveAllocation reports whether hdr is a non-sentinel, in-heap,
// currently allocated block header. This is an opportunistic check, not
// an exhaustive one: a corrupted address that happens to decode to a
// plausible allocated-looking header will not be caught here.
func (h *Heap) isLiveAllocation(hdr int) bool {
	if !h.provider.InHeap(hdr) {
		return false
	}
	if hdr == h.prolog || hdr == h.epilog {
		return false
	}
	return !headerIsFree(headerAt(h.provider, hdr))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// safeMul multiplies a and b, reporting overflow rather than wrapping.
func safeMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	if p/a != b {
		return 0, true
	}
	if p < 0 {
		return 0, true
	}
	return p, false
}
