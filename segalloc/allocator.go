// Package segalloc is the public entry point for the segregated free-list
// allocator: it wires an arena.Arena to a heapmeta.Heap behind a single
// goroutine-safe Allocator, the same shape as this ecosystem's top-level
// Allocator types (a thin, lockable facade over an engine and a backing
// store), with structured logging of lifecycle and out-of-memory events.
package segalloc

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/jdbrandon/segheap/arena"
	"github.com/jdbrandon/segheap/heapmeta"
)

// CreateFlags indicate specific allocator behaviors to activate or
// deactivate at construction time.
type CreateFlags int32

const (
	// CreateExternallySynchronized disables the Allocator's internal mutex.
	// The caller must then guarantee the Allocator is only ever touched
	// from one goroutine at a time.
	CreateExternallySynchronized CreateFlags = 1 << iota
)

// CreateOptions configures a new Allocator. The zero value is valid and
// selects the reference implementation's defaults.
type CreateOptions struct {
	// Flags activates or deactivates optional allocator behaviors.
	Flags CreateFlags

	// Limit caps the arena's total size in bytes. Zero selects
	// arena.DefaultLimit.
	Limit int

	// Lookahead overrides the best-fit search window used by size classes
	// above the small/fixed threshold. Zero selects heapmeta.DefaultLookahead.
	Lookahead int

	// Logger receives structured records of lifecycle and out-of-memory
	// events. A nil Logger disables logging entirely.
	Logger *slog.Logger
}

// Allocator is a goroutine-safe handle onto one independent heap. Multiple
// Allocators may coexist in the same process, each with its own arena and
// free-list state; unlike the reference implementation's global state,
// nothing is shared between them.
type Allocator struct {
	mu     optionalRWMutex
	logger *slog.Logger

	arena *arena.Arena
	heap  *heapmeta.Heap
}

// New creates and initializes an Allocator: it allocates a fresh arena
// rooted at base and installs the heap's prolog/epilog sentinels. base
// need not be zero; it exists purely to keep "address" and "offset"
// distinct quantities, matching the offset machine in the arena package.
func New(base int, options CreateOptions) (*Allocator, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard))
	}

	limit := options.Limit
	if limit <= 0 {
		limit = arena.DefaultLimit
	}

	a := arena.New(base, limit)
	h := heapmeta.New(a)
	if options.Lookahead > 0 {
		h.SetLookahead(options.Lookahead)
	}

	alloc := &Allocator{
		mu:     optionalRWMutex{enabled: options.Flags&CreateExternallySynchronized == 0},
		logger: logger,
		arena:  a,
		heap:   h,
	}

	if err := h.Init(); err != nil {
		return nil, errors.Wrap(err, "segalloc: failed to initialize heap")
	}

	alloc.logger.Info("Allocator::New", slog.Int("base", base), slog.Int("limit", limit))
	return alloc, nil
}

// Allocate returns the address of a new block of at least n bytes.
func (a *Allocator) Allocate(n int) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	addr, err := a.heap.Allocate(n)
	if err != nil {
		if errors.Is(err, heapmeta.ErrOOM) {
			a.logger.LogAttrs(context.Background(), slog.LevelWarn, "Allocator::Allocate out of memory",
				slog.Int("requested", n), slog.Int("arenaSize", a.arena.Size()), slog.Int("arenaLimit", a.arena.Limit()))
		}
		return 0, err
	}

	a.logger.Debug("Allocator::Allocate", slog.Int("address", addr), slog.Int("size", n))
	return addr, nil
}

// Free releases the allocation at addr. addr == 0 is a no-op.
func (a *Allocator) Free(addr int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.heap.Free(addr); err != nil {
		return err
	}
	a.logger.Debug("Allocator::Free", slog.Int("address", addr))
	return nil
}

// Reallocate resizes the allocation at addr to n bytes, in place when
// possible, returning the (possibly new) address.
func (a *Allocator) Reallocate(addr int, n int) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	newAddr, err := a.heap.Reallocate(addr, n)
	if err != nil {
		if errors.Is(err, heapmeta.ErrOOM) {
			a.logger.LogAttrs(context.Background(), slog.LevelWarn, "Allocator::Reallocate out of memory",
				slog.Int("address", addr), slog.Int("requested", n))
		}
		return 0, err
	}

	a.logger.Debug("Allocator::Reallocate", slog.Int("oldAddress", addr), slog.Int("newAddress", newAddr), slog.Int("size", n))
	return newAddr, nil
}

// Calloc allocates count*size bytes and zeroes the payload.
func (a *Allocator) Calloc(count, size int) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	addr, err := a.heap.Calloc(count, size)
	if err != nil {
		return 0, err
	}

	a.logger.Debug("Allocator::Calloc", slog.Int("address", addr), slog.Int("count", count), slog.Int("size", size))
	return addr, nil
}

// Statistics returns a coarse snapshot of the heap's current bookkeeping.
// It only reads the heap, so it takes the read lock and can run
// concurrently with other readers (including other Statistics or Validate
// calls), just never with a mutating call.
func (a *Allocator) Statistics() heapmeta.Statistics {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.heap.Statistics()
}

// Validate runs the heap's consistency checker unconditionally, regardless
// of build tags. It is intended for tests and diagnostics, not the hot
// allocation path (see heapmeta's debug-tag-gated checker for that). Like
// Statistics, it only reads the heap and takes the read lock.
func (a *Allocator) Validate() error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.heap.Validate()
}
