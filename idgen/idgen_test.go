package idgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMintIDsAreUniqueAndShareSalt(t *testing.T) {
	Reset()
	a, err := NewAllocator()
	require.NoError(t, err)

	first := a.Mint("first")
	second := a.Mint("second")

	require.False(t, first.Equal(second))
	require.Equal(t, first.Bytes[4:], second.Bytes[4:], "children of one allocator share the project salt")
	require.NotEqual(t, first.Bytes[0:4], second.Bytes[0:4], "local counter advances")
}

func TestMintLocalCounterIsBigEndian(t *testing.T) {
	Reset()
	a, err := NewAllocator()
	require.NoError(t, err)

	first := a.Mint("")
	second := a.Mint("")
	require.Equal(t, []byte{0, 0, 0, 1}, second.Bytes[0:4], "local counter is stored big-endian")
	require.True(t, first.Less(second), "big-endian local counter keeps rendered hex monotonic")
}

func TestDifferentAllocatorsHaveDifferentSalts(t *testing.T) {
	Reset()
	a, err := NewAllocator()
	require.NoError(t, err)
	b, err := NewAllocator()
	require.NoError(t, err)

	require.NotEqual(t, a.salt, b.salt)
}
