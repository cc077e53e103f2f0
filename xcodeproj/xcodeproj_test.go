package xcodeproj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/stretchr/testify/require"
)

const sampleProj = "// !$*UTF8*$!\n" +
	"{\n" +
	"\tarchiveVersion = 1;\n" +
	"\tobjects = {\n" +
	"\t\t0000000000000000000000A1 /* Project object */ = {\n" +
	"\t\t\tisa = PBXProject;\n" +
	"\t\t\tmainGroup = 0000000000000000000000A2;\n" +
	"\t\t};\n" +
	"\t\t0000000000000000000000A2 = {\n" +
	"\t\t\tisa = PBXGroup;\n" +
	"\t\t\tsourceTree = \"<group>\";\n" +
	"\t\t};\n" +
	"\t};\n" +
	"\trootObject = 0000000000000000000000A1 /* Project object */;\n" +
	"}\n"

func writeSampleBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bundle := filepath.Join(dir, "Sample.xcodeproj")
	require.NoError(t, os.Mkdir(bundle, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "project.pbxproj"), []byte(sampleProj), 0o644))
	return bundle
}

func TestOpenXcodeproj(t *testing.T) {
	bundle := writeSampleBundle(t)

	project, err := Open(bundle)
	require.NoError(t, err)
	require.Equal(t, bundle, project.Path)
	require.Equal(t, "Sample", project.Name)
	require.Equal(t, "Xcodeproj", project.Root.ISA)

	v, ok := project.Root.Get("rootObject")
	require.True(t, ok)
	require.IsType(t, &serialized.ID{}, v)
}

func TestSaveRoundTrips(t *testing.T) {
	bundle := writeSampleBundle(t)

	project, err := Open(bundle)
	require.NoError(t, err)

	require.NoError(t, project.Save())

	reopened, err := Open(bundle)
	require.NoError(t, err)
	require.Equal(t, project.Root.ID, reopened.Root.ID)
}

func TestIsXcodeProj(t *testing.T) {
	require.True(t, IsXcodeProj("./BitriseSample.xcodeproj"))
	require.False(t, IsXcodeProj("./BitriseSample.xcworkspace"))
}
