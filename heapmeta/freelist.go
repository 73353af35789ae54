package heapmeta

// The segregated free-list index. Each class's list is circular and
// doubly linked through the free block's payload: the first word (at
// b+4, i.e. the payload address) holds prev_off, the second (b+8) holds
// next_off. List heads live in Heap.freeList, keyed by size class, and
// are themselves just offsets (NullOffset meaning "list is empty").

func (h *Heap) listPrevOff(b int) uint32      { return h.provider.GetUint32(b + 4) }
func (h *Heap) listSetPrevOff(b int, o uint32) { h.provider.PutUint32(b+4, o) }
func (h *Heap) listNextOff(b int) uint32      { return h.provider.GetUint32(b + 8) }
func (h *Heap) listSetNextOff(b int, o uint32) { h.provider.PutUint32(b+8, o) }

// listInsert splices block b into the circular list for class c, making
// it the new head (LIFO insertion).
func (h *Heap) listInsert(b int, c int) {
	bOff := h.provider.ToOffset(b)
	headOff := h.freeList[c]

	if headOff == arenaNullOffset {
		h.listSetPrevOff(b, bOff)
		h.listSetNextOff(b, bOff)
		h.freeList[c] = bOff
		return
	}

	head := h.provider.ToAddr(headOff)
	tailOff := h.listPrevOff(head)
	tail := h.provider.ToAddr(tailOff)

	h.listSetNextOff(b, headOff)
	h.listSetPrevOff(b, tailOff)
	h.listSetPrevOff(head, bOff)
	h.listSetNextOff(tail, bOff)
	h.freeList[c] = bOff
}

// listDelete removes block b from the circular list for class c.
func (h *Heap) listDelete(b int, c int) {
	bOff := h.provider.ToOffset(b)
	nextOff := h.listNextOff(b)

	if nextOff == bOff {
		// Singleton list.
		h.freeList[c] = arenaNullOffset
		return
	}

	prevOff := h.listPrevOff(b)
	next := h.provider.ToAddr(nextOff)
	prev := h.provider.ToAddr(prevOff)

	h.listSetPrevOff(next, prevOff)
	h.listSetNextOff(prev, nextOff)

	if h.freeList[c] == bOff {
		h.freeList[c] = nextOff
	}
}

// add inserts b into the free list matching its current size class and
// updates the running free-block bookkeeping. Callers must have already
// cleared the ALLOC bit and finalized b's size via mark.
func (h *Heap) add(b int) {
	word := headerAt(h.provider, b)
	c := headerClass(word)
	h.listInsert(b, c)
	h.freeCount++
	h.freeBytes += headerSize(word)
}

// remove deletes b from the free list matching its current size class
// and updates the running free-block bookkeeping. Callers must call this
// before mutating b's size in place (e.g. during coalescing or carve).
func (h *Heap) remove(b int) {
	word := headerAt(h.provider, b)
	c := headerClass(word)
	h.listDelete(b, c)
	h.freeCount--
	h.freeBytes -= headerSize(word)
}

// listHead returns the address of the head of class c's free list, or 0
// if the list is empty.
func (h *Heap) listHead(c int) int {
	off := h.freeList[c]
	if off == arenaNullOffset {
		return 0
	}
	return h.provider.ToAddr(off)
}
