package pbxproj

import (
	"testing"

	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/stretchr/testify/require"
)

func TestParseRecognizesBanner(t *testing.T) {
	root, err := Document([]byte("// !$*UTF8*$!\n{ a = 1; }"))
	require.NoError(t, err)

	v, ok := root.Get("a")
	require.True(t, ok)
	require.Equal(t, serialized.Literal("1"), v)
}

func TestParseRejectsMissingBanner(t *testing.T) {
	_, err := Document([]byte("{ a = 1; }"))
	require.ErrorIs(t, err, ErrInvalidSlashBang)
}

func TestRoundTripScenario(t *testing.T) {
	root, err := Document([]byte("// !$*UTF8*$!\n{ a = 1; }"))
	require.NoError(t, err)

	out := Write(root)
	require.Equal(t, "// !$*UTF8*$!\n{\n\ta = 1;\n}\n", string(out))
}

func TestIDLiteralDetection(t *testing.T) {
	root, err := Document([]byte("// !$*UTF8*$!\n{ a = 0123456789ABCDEF01234567; b = 0123456789ABCDEF0123456; c = 0123456789ABCDEF0123456G; }"))
	require.NoError(t, err)

	va, _ := root.Get("a")
	_, isID := va.(*serialized.ID)
	require.True(t, isID)

	vb, _ := root.Get("b")
	require.Equal(t, serialized.Literal("0123456789ABCDEF0123456"), vb)

	vc, _ := root.Get("c")
	require.Equal(t, serialized.Literal("0123456789ABCDEF0123456G"), vc)
}

func TestParseReifiesISAIntoTypedObject(t *testing.T) {
	src := "// !$*UTF8*$!\n{\n\tobjects = {\n\t\t0123456789ABCDEF01234567 /* proj */ = {\n\t\t\tisa = PBXProject;\n\t\t\tmainGroup = 00000000000000000000000A;\n\t\t};\n\t};\n}\n"
	root, err := Document([]byte(src))
	require.NoError(t, err)

	objects, err := root.GetMap("objects", false)
	require.NoError(t, err)

	v, ok := objects.Get("0123456789ABCDEF01234567")
	require.True(t, ok)
	obj, ok := v.(*serialized.Object)
	require.True(t, ok, "isa-tagged map reifies into a typed Object")
	require.Equal(t, "PBXProject", obj.ISA)

	proj := AsProject(obj)
	mainGroup, err := proj.MainGroup()
	require.NoError(t, err)
	require.Equal(t, "00000000000000000000000A", mainGroup.String())
}

func TestParseSchemaViolationOnDuplicateKey(t *testing.T) {
	_, err := Document([]byte("// !$*UTF8*$!\n{ a = 1; a = 2; }"))
	require.Error(t, err)
}
