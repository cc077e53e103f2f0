package xcpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a//b/../c", "a/c"},
		{"./a", "a"},
		{"a\\b", "a/b"},
	}
	for _, c := range cases {
		got, ok := Canonicalize(c.in)
		require.True(t, ok, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestCanonicalizeExcessiveDotDotFails(t *testing.T) {
	_, ok := Canonicalize("../../x")
	require.False(t, ok)
}

func TestPathComponents(t *testing.T) {
	require.Equal(t, []string{"src", "lib", "a.cc"}, PathComponents("src//lib/./a.cc"))
}

func TestPathRelativeTo(t *testing.T) {
	got := PathRelativeTo("b.h", "dir/a.cc")
	require.Equal(t, "dir/b.h", got)
}
