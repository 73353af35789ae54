package heapmeta_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jdbrandon/segheap/heapmeta"
	"github.com/jdbrandon/segheap/heapmeta/mock_heapmeta"
)

// TestInitPropagatesBackingStoreFailure exercises a failure mode the real
// arena.Arena can never produce on its own: Extend failing for a reason
// other than exceeding the configured limit (e.g. a host allocation
// failure in a real mmap-backed provider). Only a mock ArenaProvider can
// force this deterministically.
func TestInitPropagatesBackingStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backingFailure := errors.New("backing store exhausted")

	provider := mock_heapmeta.NewMockArenaProvider(ctrl)
	provider.EXPECT().Extend(16).Return(0, backingFailure)

	h := heapmeta.New(provider)
	err := h.Init()
	require.Error(t, err)
	require.ErrorIs(t, err, backingFailure)
}
