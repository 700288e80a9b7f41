package parsefn_test

import (
	"testing"

	"parsefn"

	"github.com/stretchr/testify/require"
)

func TestNewNeeded_PositiveSizeIsKnown(t *testing.T) {
	n := parsefn.NewNeeded(3)

	require.True(t, n.IsKnown())

	size, ok := n.Size()
	require.True(t, ok)
	require.Equal(t, uint(3), size)
}

func TestNewNeeded_ZeroNormalizesToUnknown(t *testing.T) {
	var unknown parsefn.Needed

	n := parsefn.NewNeeded(0)

	require.Equal(t, unknown, n)
	require.False(t, n.IsKnown())

	size, ok := n.Size()
	require.False(t, ok)
	require.Zero(t, size)
}

func TestNeeded_MapTransformsAndRenormalizes(t *testing.T) {
	doubled := parsefn.NewNeeded(3).Map(func(n uint) uint { return n * 2 })
	require.Equal(t, parsefn.NewNeeded(6), doubled)

	// mapping a known size to zero yields the unknown hint again
	zeroed := parsefn.NewNeeded(3).Map(func(uint) uint { return 0 })
	require.Equal(t, parsefn.NewNeeded(0), zeroed)
	require.False(t, zeroed.IsKnown())
}

func TestNeeded_MapSkipsUnknown(t *testing.T) {
	calls := 0

	n := parsefn.NewNeeded(0).Map(func(n uint) uint {
		calls++
		return n + 1
	})

	require.False(t, n.IsKnown())
	require.Zero(t, calls)
}

func TestNeeded_String(t *testing.T) {
	require.Equal(t, "5 more bytes", parsefn.NewNeeded(5).String())
	require.Equal(t, "an unknown amount of data", parsefn.NewNeeded(0).String())
}
