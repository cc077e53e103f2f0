package filetype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownExtensions(t *testing.T) {
	cases := []struct {
		ext      string
		wantType string
		wantFlag Flag
	}{
		{"c", "sourcecode.c.c", Compiler},
		{"cc", "sourcecode.cpp.cpp", Compiler},
		{"cpp", "sourcecode.cpp.cpp", Compiler},
		{"h", "sourcecode.c.h", Header},
		{"a", "archive.ar", LinkLibrary},
		{"framework", "wrapper.framework", LinkFramework},
		{"app", "wrapper.application", Application},
	}
	for _, c := range cases {
		e := Lookup(c.ext)
		require.Equal(t, c.wantType, e.XcodeType, c.ext)
		require.True(t, e.Flags.Has(c.wantFlag), c.ext)
	}
}

func TestLookupUnknownExtensionFallsBack(t *testing.T) {
	e := Lookup("xyz")
	require.Equal(t, "text", e.XcodeType)
	require.Equal(t, Flag(0), e.Flags)
}

func TestOnlyCompilerFlaggedExtensionsCompile(t *testing.T) {
	require.True(t, Lookup("c").Flags.Has(Compiler))
	require.False(t, Lookup("h").Flags.Has(Compiler))
	require.False(t, Lookup("plist").Flags.Has(Compiler))
}
