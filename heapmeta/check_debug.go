//go:build heapdebug

package heapmeta

// debugCheck runs Validate and panics on the first consistency violation
// it finds. Building with the heapdebug tag switches this in at every
// entry and exit of the placement engine's public operations; without
// the tag, debugCheck is the no-op in check_release.go instead, so
// release builds pay nothing for it.
func (h *Heap) debugCheck() {
	if err := h.Validate(); err != nil {
		panic(err)
	}
}
