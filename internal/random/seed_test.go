package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeed(t *testing.T) {
	seeds := make(map[int64]struct{})
	for i := 0; i < 16; i++ {
		seed, err := NewSeed()
		require.NoError(t, err)
		seeds[seed] = struct{}{}
	}
	require.Greater(t, len(seeds), 1, "seeds should vary between calls")
}
