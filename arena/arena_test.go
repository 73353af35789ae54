package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdbrandon/segheap/arena"
)

func TestExtendGrowsAndReturnsPriorTop(t *testing.T) {
	a := arena.New(0x2000, 1024)

	addr1, err := a.Extend(16)
	require.NoError(t, err)
	require.Equal(t, 0x2000, addr1)
	require.Equal(t, 16, a.Size())

	addr2, err := a.Extend(8)
	require.NoError(t, err)
	require.Equal(t, 0x2000+16, addr2)
}

func TestExtendBeyondLimitFails(t *testing.T) {
	a := arena.New(0x2000, 16)

	_, err := a.Extend(32)
	require.ErrorIs(t, err, arena.LimitError)
}

func TestOffsetRoundTrip(t *testing.T) {
	a := arena.New(0x4000, 1024)
	addr, err := a.Extend(64)
	require.NoError(t, err)

	off := a.ToOffset(addr + 8)
	require.Equal(t, uint32(8), off)
	require.Equal(t, addr+8, a.ToAddr(off))
}

func TestZeroAddressIsNullOffset(t *testing.T) {
	a := arena.New(0x4000, 1024)
	require.Equal(t, arena.NullOffset, a.ToOffset(0))
	require.Equal(t, 0, a.ToAddr(arena.NullOffset))
}

func TestOutOfHeapOffsetPanics(t *testing.T) {
	a := arena.New(0x4000, 1024)
	_, err := a.Extend(16)
	require.NoError(t, err)

	require.Panics(t, func() {
		a.ToOffset(0x4000 + 1000)
	})
}

func TestGetPutUint32RoundTrip(t *testing.T) {
	a := arena.New(0x8000, 1024)
	addr, err := a.Extend(16)
	require.NoError(t, err)

	a.PutUint32(addr+4, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), a.GetUint32(addr+4))
}

func TestMoveToleratesOverlap(t *testing.T) {
	a := arena.New(0x8000, 1024)
	addr, err := a.Extend(32)
	require.NoError(t, err)

	a.PutUint32(addr, 1)
	a.PutUint32(addr+4, 2)
	a.PutUint32(addr+8, 3)

	a.Move(addr+4, addr, 12)

	require.Equal(t, uint32(1), a.GetUint32(addr+4))
	require.Equal(t, uint32(2), a.GetUint32(addr+8))
	require.Equal(t, uint32(3), a.GetUint32(addr+12))
}

func TestZero(t *testing.T) {
	a := arena.New(0x8000, 1024)
	addr, err := a.Extend(16)
	require.NoError(t, err)

	a.PutUint32(addr, 0xFFFFFFFF)
	a.Zero(addr, 16)
	require.Zero(t, a.GetUint32(addr))
}
