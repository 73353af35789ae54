package segalloc

import "sync"

// optionalRWMutex is a sync.RWMutex that can be switched off, for callers
// that have already guaranteed single-threaded access to an Allocator and
// want to skip the locking overhead (the CreateExternallySynchronized use
// case). Allocate, Free, Reallocate, and Calloc all mutate the heap and
// take the write lock; Statistics and Validate only read it and take the
// read lock instead, so two goroutines that are both just polling
// diagnostics never block each other.
type optionalRWMutex struct {
	mu      sync.RWMutex
	enabled bool
}

func (m *optionalRWMutex) Lock() {
	if m.enabled {
		m.mu.Lock()
	}
}

func (m *optionalRWMutex) Unlock() {
	if m.enabled {
		m.mu.Unlock()
	}
}

func (m *optionalRWMutex) RLock() {
	if m.enabled {
		m.mu.RLock()
	}
}

func (m *optionalRWMutex) RUnlock() {
	if m.enabled {
		m.mu.RUnlock()
	}
}
