package serialized

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsIDLiteral(t *testing.T) {
	require.True(t, IsIDLiteral("0123456789ABCDEF01234567"))
	require.False(t, IsIDLiteral("0123456789ABCDEF0123456"))
	require.False(t, IsIDLiteral("0123456789ABCDEF0123456G"))
}

func TestIDRoundTrip(t *testing.T) {
	id, err := ParseID("D015A98C1A9E25AC00A8721B")
	require.NoError(t, err)
	require.Equal(t, "D015A98C1A9E25AC00A8721B", id.String())
}

func TestIDEqualityIgnoresComment(t *testing.T) {
	a, err := ParseID("D015A98C1A9E25AC00A8721B")
	require.NoError(t, err)
	b := a
	b.Comment = "main.m in Sources"
	require.True(t, a.Equal(b))
}

func TestIDLess(t *testing.T) {
	a, _ := ParseID("000000000000000000000001")
	b, _ := ParseID("000000000000000000000002")
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestArrayAddID(t *testing.T) {
	arr := NewArray()
	id, _ := ParseID("D015A98C1A9E25AC00A8721B")
	id.Comment = "main.m in Sources"
	arr.AddID(id)
	require.Equal(t, 1, arr.Len())
	got, ok := arr.Items[0].(*ID)
	require.True(t, ok)
	require.Equal(t, "main.m in Sources", got.Comment)
}
