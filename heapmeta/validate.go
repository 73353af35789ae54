package heapmeta

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
)

// Validate walks the heap and cross-checks it against its own bookkeeping:
// every block between the sentinels decodes to a well-formed header and
// chains consistently in both directions, every free block is reachable
// from exactly one free list of the right class, every free list entry is
// actually free, and the running counters match what the walk finds. It
// never mutates the heap. Validate is opportunistic, not exhaustive: it
// can only check structure that the encoding makes visible, not recover
// from payload corruption that happens to decode plausibly.
func (h *Heap) Validate() error {
	walked, err := h.walkFree()
	if err != nil {
		return err
	}

	walkedCount := walked.Count()
	if err := h.checkFreeLists(walked); err != nil {
		return err
	}

	if walkedCount != h.freeCount {
		return errors.Newf("heapmeta: forward walk found %d free blocks, bookkeeping says %d", walkedCount, h.freeCount)
	}

	return nil
}

// walkFree performs the forward walk from prolog to epilog, checking that
// every header decodes to an 8-aligned size and that the walk terminates
// exactly at the epilog, and returns the set of free block addresses it
// found along the way, each mapped to its payload size, after checking
// the walk's free-byte and allocated-block totals against the heap's
// running counters. At every step it
// also cross-checks the chain in the opposite direction: blockPrev, which
// recovers a predecessor's address from either the footer or the
// PFIXED/SZCLASS hint bits rather than from the forward stride used to
// get here, must land back on the block it came from. This is what
// catches a hint-bit or footer encoding bug that the forward-only
// bookkeeping above would miss entirely.
func (h *Heap) walkFree() (*swiss.Map[int, int], error) {
	free := swiss.NewMap[int, int](8)

	freeBytes := 0
	allocCount := 0
	b := h.blockNext(h.prolog)
	for b != h.epilog && b != 0 {
		word := headerAt(h.provider, b)
		size := headerSize(word)
		if size%8 != 0 {
			return nil, errors.Newf("heapmeta: block at %d has non-8-aligned size %d", b, size)
		}
		if size == 0 && b != h.prolog && b != h.epilog {
			return nil, errors.Newf("heapmeta: non-sentinel block at %d has zero payload size", b)
		}

		if headerIsFree(word) {
			free.Put(b, size)
			freeBytes += size
		} else {
			allocCount++
		}

		next := h.blockNext(b)
		if next <= b {
			return nil, errors.Newf("heapmeta: walk did not advance past block at %d", b)
		}
		if back := h.blockPrev(next); back != b {
			return nil, errors.Newf("heapmeta: block at %d chains forward to %d, but that block's blockPrev resolves to %d", b, next, back)
		}
		b = next
	}
	if b != h.epilog {
		return nil, errors.Newf("heapmeta: forward walk from prolog did not reach epilog")
	}

	if freeBytes != h.freeBytes {
		return nil, errors.Newf("heapmeta: forward walk sums %d free bytes, bookkeeping says %d", freeBytes, h.freeBytes)
	}
	if allocCount != h.allocCount {
		return nil, errors.Newf("heapmeta: forward walk found %d allocated blocks, bookkeeping says %d", allocCount, h.allocCount)
	}

	return free, nil
}

// checkFreeLists walks every size class's circular list and verifies each
// entry is free, belongs to that exact class, and was seen by the forward
// walk; each visited entry is removed from walked so that a block
// appearing in two lists, or a list containing more entries than the
// walk found, surfaces as a missing/duplicate error.
func (h *Heap) checkFreeLists(walked *swiss.Map[int, int]) error {
	for c := 0; c < NumClasses; c++ {
		start := h.listHead(c)
		if start == 0 {
			continue
		}

		n := start
		visited := 0
		for {
			word := headerAt(h.provider, n)
			if !headerIsFree(word) {
				return errors.Newf("heapmeta: free list %d contains allocated block at %d", c, n)
			}
			if got := headerClass(word); got != c {
				return errors.Newf("heapmeta: block at %d is in free list %d but has class %d", n, c, got)
			}
			if _, ok := walked.Get(n); !ok {
				return errors.Newf("heapmeta: block at %d is in free list %d twice, or was not found by the forward walk", n, c)
			}
			walked.Delete(n)

			visited++
			if visited > h.freeCount {
				return errors.Newf("heapmeta: free list %d appears to cycle without returning to its head", c)
			}

			next := h.provider.ToAddr(h.listNextOff(n))
			if next == start {
				break
			}
			n = next
		}
	}

	if walked.Count() != 0 {
		return errors.Newf("heapmeta: %d free block(s) found by the forward walk are not linked into any free list", walked.Count())
	}
	return nil
}
