package heapmeta

// Header bit layout: the low three bits of the 4-byte header word are
// metadata flags, the remaining bits (always a multiple of 8) are the
// payload size.
const (
	sizeMask uint32 = 0xFFFFFFF8

	allocBit   uint32 = 1 << 0 // ALLOC
	pfixedBit  uint32 = 1 << 1 // PFIXED
	szclassBit uint32 = 1 << 2 // SZCLASS
)

// headerSize extracts the payload size encoded in a header word.
func headerSize(word uint32) int {
	return int(word & sizeMask)
}

// headerIsFree reports whether the ALLOC bit is clear.
func headerIsFree(word uint32) bool {
	return word&allocBit == 0
}

// headerClass returns the free-list size class for a header word, based
// solely on its encoded payload size.
func headerClass(word uint32) int {
	return sizeClass(headerSize(word))
}

// headerAt reads the header word at addr.
func headerAt(p ArenaProvider, addr int) uint32 {
	return p.GetUint32(addr)
}

// setHeaderAt writes word as the header at addr.
func setHeaderAt(p ArenaProvider, addr int, word uint32) {
	p.PutUint32(addr, word)
}

// packHeader builds a header word from a payload size and flag bits. size
// must already be a multiple of 8.
func packHeader(size int, alloc, pfixed, szclass bool) uint32 {
	word := uint32(size)
	if alloc {
		word |= allocBit
	}
	if pfixed {
		word |= pfixedBit
	}
	if szclass {
		word |= szclassBit
	}
	return word
}
