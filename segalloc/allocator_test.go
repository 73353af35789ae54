package segalloc_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/jdbrandon/segheap/heapmeta"
	"github.com/jdbrandon/segheap/segalloc"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard))
}

func TestAllocatorLifecycle(t *testing.T) {
	alloc, err := segalloc.New(0x10000, segalloc.CreateOptions{Logger: testLogger()})
	require.NoError(t, err)

	addr, err := alloc.Allocate(128)
	require.NoError(t, err)
	require.NotZero(t, addr)

	stats := alloc.Statistics()
	require.Equal(t, 1, stats.AllocationCount)

	require.NoError(t, alloc.Free(addr))
	require.NoError(t, alloc.Validate())
}

func TestAllocatorReallocateAndCalloc(t *testing.T) {
	alloc, err := segalloc.New(0x10000, segalloc.CreateOptions{Logger: testLogger()})
	require.NoError(t, err)

	addr, err := alloc.Calloc(4, 16)
	require.NoError(t, err)
	require.NotZero(t, addr)

	grown, err := alloc.Reallocate(addr, 256)
	require.NoError(t, err)
	require.NotZero(t, grown)

	require.NoError(t, alloc.Free(grown))
	require.NoError(t, alloc.Validate())
}

func TestAllocatorOutOfMemoryIsReported(t *testing.T) {
	alloc, err := segalloc.New(0x10000, segalloc.CreateOptions{Logger: testLogger(), Limit: 64})
	require.NoError(t, err)

	_, err = alloc.Allocate(1000)
	require.ErrorIs(t, err, heapmeta.ErrOOM)
}

func TestAllocatorExternallySynchronizedSkipsLocking(t *testing.T) {
	alloc, err := segalloc.New(0x10000, segalloc.CreateOptions{
		Logger: testLogger(),
		Flags:  segalloc.CreateExternallySynchronized,
	})
	require.NoError(t, err)

	addr, err := alloc.Allocate(32)
	require.NoError(t, err)
	require.NoError(t, alloc.Free(addr))
}
