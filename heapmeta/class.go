package heapmeta

// NumClasses is the number of segregated free-list size classes.
const NumClasses = 13

// classFixed16 and classFixed24 are the two footer-less size classes: the
// only classes whose successor carries the PFIXED/SZCLASS hint bits
// instead of a written footer.
const (
	classFixed16 = 0
	classFixed24 = 1
	// classFirstFooted is the first class that always carries a footer.
	classFirstFooted = 2
	// classBestFitStart is the first class searchlist applies bounded
	// best-fit to. Any class below this is a "small" class for the
	// purposes of searchlist's first-hit policy: classes 0-6 inclusive.
	classBestFitStart = 7
	// classCatchAll is the last class: the fallback bucket for any
	// payload size above the largest named bucket.
	classCatchAll = NumClasses - 1
)

// classBounds[i] is the largest payload size (in bytes) that belongs to
// class i, or -1 for the catch-all class, which has no upper bound.
var classBounds = [NumClasses]int{
	8,    // class 0: exactly 8
	16,   // class 1: exactly 16
	24,   // class 2: exactly 24
	36,   // class 3: 25-36
	40,   // class 4: 37-40
	48,   // class 5: 41-48
	56,   // class 6: 49-56
	72,   // class 7: 57-72
	104,  // class 8: 73-104
	304,  // class 9: 105-304
	504,  // class 10: 305-504
	1000, // class 11: 505-1000
	-1,   // class 12: 1001+ (catch-all)
}

// sizeClass returns the free-list index for a block whose payload is
// already 8-byte-aligned and at least 8 bytes.
func sizeClass(payload int) int {
	for i, bound := range classBounds {
		if bound < 0 {
			return i
		}
		if payload <= bound {
			return i
		}
	}
	return classCatchAll
}

// hasFooter reports whether blocks of class c carry a written footer.
// Only the two fixed classes elide it.
func hasFooter(c int) bool {
	return c >= classFirstFooted
}

// fixedClassSpan returns the total span in bytes (header + payload +
// implicit footer slot) of a footer-less block belonging to class c: 16
// bytes for class 0, 24 bytes for class 1. Any other input means a block
// was tagged PFIXED with a class that isn't actually fixed-size, which
// can only happen from a corrupted header; panicking here is safer than
// silently returning a span that would corrupt blockPrev.
func fixedClassSpan(c int) int {
	switch c {
	case classFixed16:
		return 16
	case classFixed24:
		return 24
	default:
		panic("heapmeta: fixedClassSpan called with a non-fixed class")
	}
}

// roundUpToWord rounds n up to the allocator's 8-byte word size, the same
// rounding the reference implementation's ALIGN macro performs.
func roundUpToWord(n int) int {
	return (n + 7) &^ 7
}

// normalizeSize rounds a requested payload size up to a multiple of 8,
// then collapses the two smallest buckets so that every live block has
// room for the free-list prev/next offsets even when it is later freed.
func normalizeSize(n int) int {
	n = roundUpToWord(n)
	if n > 12 && n <= 20 {
		return 16
	}
	if n <= 12 {
		return 8
	}
	return n
}
