package heapmeta

import (
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// WriteDetailedMap serializes the entire block chain between the
// sentinels, in physical order, as a JSON array of objects describing
// each block's address, size, and allocation state. This is the Go
// analogue of the reference implementation's printheap diagnostic, aimed
// at a jwriter.Writer instead of stdout.
func (h *Heap) WriteDetailedMap(writer *jwriter.Writer) {
	arr := writer.Array()
	defer arr.End()

	b := h.blockNext(h.prolog)
	for b != h.epilog && b != 0 {
		word := headerAt(h.provider, b)

		obj := arr.Object()
		obj.Name("Address").Int(b)
		obj.Name("Size").Int(headerSize(word))
		obj.Name("Free").Bool(headerIsFree(word))
		obj.Name("Class").Int(headerClass(word))
		obj.End()

		b = h.blockNext(b)
	}
}

// WriteFreeLists serializes every size class's free list as a JSON object
// keyed by class index, each holding an array of block addresses in list
// order. This is the Go analogue of the reference implementation's
// printflist diagnostic.
func (h *Heap) WriteFreeLists(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	for c := 0; c < NumClasses; c++ {
		start := h.listHead(c)

		arr := obj.Name(strconv.Itoa(c)).Array()
		if start != 0 {
			n := start
			for {
				arr.Int(n)
				next := h.provider.ToAddr(h.listNextOff(n))
				if next == start {
					break
				}
				n = next
			}
		}
		arr.End()
	}
}

// WriteStatistics serializes the block-level statistics gathered from a
// single detailed walk, in the BlockJsonData shape used elsewhere in
// this ecosystem's diagnostics, plus a per-class breakdown keyed by free
// list index.
func (h *Heap) WriteStatistics(writer *jwriter.Writer) {
	stats := h.DetailedStatistics()

	obj := writer.Object()
	defer obj.End()

	obj.Name("TotalBytes").Int(stats.ArenaBytes)
	obj.Name("UnusedBytes").Int(stats.FreeBytes)
	obj.Name("Allocations").Int(stats.AllocationCount)
	obj.Name("UnusedRanges").Int(stats.FreeCount)

	byClass := obj.Name("ByClass").Array()
	for c := 0; c < NumClasses; c++ {
		entry := byClass.Object()
		entry.Name("Class").Int(c)
		entry.Name("FreeCount").Int(stats.ByClass[c].FreeCount)
		entry.Name("FreeBytes").Int(stats.ByClass[c].FreeBytes)
		entry.End()
	}
	byClass.End()
}
