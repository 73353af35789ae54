package heapmeta

// The heap walker and block metadata codec: navigation between
// physically adjacent blocks, and the `mark` operation that keeps
// footers and successor hint bits in sync with a block's header.

// blockNext returns the address of the block physically following b, or
// 0 if b is the epilog (there is nothing after it).
func (h *Heap) blockNext(b int) int {
	if b == h.epilog {
		return 0
	}
	word := headerAt(h.provider, b)
	return b + headerSize(word) + 8
}

// blockPrev returns the address of the block physically preceding b, or
// 0 if b is the prolog (there is nothing before it). It reconstructs the
// predecessor's address either from the PFIXED/SZCLASS hint bits in b's
// own header (when the predecessor is a footer-less fixed-class block)
// or from the predecessor's footer.
func (h *Heap) blockPrev(b int) int {
	if b == h.prolog {
		return 0
	}

	word := headerAt(h.provider, b)
	if word&pfixedBit != 0 {
		class := classFixed16
		if word&szclassBit != 0 {
			class = classFixed24
		}
		return b - fixedClassSpan(class)
	}

	footerWord := headerAt(h.provider, b-4)
	size := headerSize(footerWord)
	return b - (size + 8)
}

// mark writes the bookkeeping that keeps the heap walkable after b's
// header has been given its final size and flags for this operation. If
// b's size class elides a footer, mark instead stamps the PFIXED/SZCLASS
// hint bits into b's physical successor. Otherwise it writes a footer
// mirroring b's header and clears those hint bits in the successor, since
// a footer being present means the successor no longer needs them. This
// is the single place the footer-elision encoding is written, and it
// must run immediately after any header mutation.
func (h *Heap) mark(b int) {
	word := headerAt(h.provider, b)
	size := headerSize(word)
	class := sizeClass(size)

	if !hasFooter(class) {
		next := h.blockNext(b)
		nextWord := headerAt(h.provider, next)
		nextWord &^= szclassBit
		if class == classFixed24 {
			nextWord |= szclassBit
		}
		nextWord |= pfixedBit
		setHeaderAt(h.provider, next, nextWord)
		return
	}

	setHeaderAt(h.provider, b+4+size, word)

	next := h.blockNext(b)
	nextWord := headerAt(h.provider, next)
	nextWord &^= pfixedBit | szclassBit
	setHeaderAt(h.provider, next, nextWord)
}
