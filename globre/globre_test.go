package globre

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	for _, name := range []string{"a.c", "b.cc", "c.h"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "src", name), nil, 0o644))
	}
	return dir
}

func withDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestMatchMixedGlobRegex(t *testing.T) {
	withDir(t, setupTree(t))

	got := Match("src/*.(c|cc)")
	sort.Strings(got)
	require.Equal(t, []string{"src/a.c", "src/b.cc"}, got)
}

func TestMatchSingleExtension(t *testing.T) {
	withDir(t, setupTree(t))

	got := Match("src/*.h")
	require.Equal(t, []string{"src/c.h"}, got)
}

func TestMatchMissingDirectoryYieldsNothing(t *testing.T) {
	withDir(t, setupTree(t))

	require.Empty(t, Match("missing/*"))
}

func TestCompileComponentEscapes(t *testing.T) {
	c := compileComponent(`foo(_x86)\?.cc`)
	require.True(t, c.hasRegex)
	require.True(t, c.re.MatchString("foo.cc"))
	require.True(t, c.re.MatchString("foo_x86.cc"))
	require.False(t, c.re.MatchString("foo_x86x.cc"))
}
