//go:build !heapdebug

package heapmeta

// debugCheck is a no-op outside heapdebug builds; see check_debug.go.
func (h *Heap) debugCheck() {}
