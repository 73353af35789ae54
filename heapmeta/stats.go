package heapmeta

import "math"

// Statistics returns a coarse snapshot of the heap's current bookkeeping.
// It is O(1): every field comes straight from counters the placement
// engine already maintains, not a walk.
func (h *Heap) Statistics() Statistics {
	return Statistics{
		ArenaBytes:      h.provider.Size(),
		AllocationCount: h.allocCount,
		AllocationBytes: h.provider.Size() - h.freeBytes,
		FreeCount:       h.freeCount,
		FreeBytes:       h.freeBytes,
	}
}

// DetailedStatistics walks every physical block between the sentinels and
// returns the coarse Statistics plus allocation/free-gap extents and a
// per-size-class free-byte breakdown that only a walk can produce. The
// walk only trusts header words, the same as Validate; callers that want
// a consistency guarantee should Validate first.
func (h *Heap) DetailedStatistics() DetailedStatistics {
	stats := DetailedStatistics{
		Statistics:         h.Statistics(),
		AllocationSizeMin:  math.MaxInt,
		UnusedRangeSizeMin: math.MaxInt,
	}

	b := h.blockNext(h.prolog)
	for b != h.epilog && b != 0 {
		word := headerAt(h.provider, b)
		size := headerSize(word)

		if headerIsFree(word) {
			c := headerClass(word)
			stats.ByClass[c].FreeCount++
			stats.ByClass[c].FreeBytes += size

			if size < stats.UnusedRangeSizeMin {
				stats.UnusedRangeSizeMin = size
			}
			if size > stats.UnusedRangeSizeMax {
				stats.UnusedRangeSizeMax = size
			}
		} else {
			if size < stats.AllocationSizeMin {
				stats.AllocationSizeMin = size
			}
			if size > stats.AllocationSizeMax {
				stats.AllocationSizeMax = size
			}
		}

		b = h.blockNext(b)
	}

	if stats.AllocationSizeMin == math.MaxInt {
		stats.AllocationSizeMin = 0
	}
	if stats.UnusedRangeSizeMin == math.MaxInt {
		stats.UnusedRangeSizeMin = 0
	}

	return stats
}
