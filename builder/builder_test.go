package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-tools/xcode-project-gen/dslmodel"
	"github.com/bitrise-tools/xcode-project-gen/pbxproj"
	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/stretchr/testify/require"
)

func countByISA(doc *builderDoc) map[string]int {
	counts := map[string]int{}
	for _, obj := range doc.order {
		counts[obj.ISA]++
	}
	return counts
}

func findByISA(doc *builderDoc, isa string, match func(*serialized.Object) bool) *serialized.Object {
	for _, obj := range doc.order {
		if obj.ISA == isa && match(obj) {
			return obj
		}
	}
	return nil
}

func TestBuildEmptyProject(t *testing.T) {
	proj := dslmodel.Project{
		Name: "demo",
		Configurations: map[string]dslmodel.Configuration{
			"Release": {Name: "Release"},
		},
	}

	root, err := Build(proj)
	require.NoError(t, err)
	require.Equal(t, pbxproj.KindXcodeproj, root.ISA)

	doc := root.Doc.(*builderDoc)
	counts := countByISA(doc)
	require.Equal(t, 1, counts[pbxproj.KindProject])
	require.Equal(t, 1, counts[pbxproj.KindConfigurationList])
	require.Equal(t, 1, counts[pbxproj.KindBuildConfiguration])
	require.Equal(t, 2, counts[pbxproj.KindGroup])

	rootObjectID, err := pbxproj.AsXcodeproj(root).RootObject()
	require.NoError(t, err)
	projObj, ok := doc.Lookup(rootObjectID)
	require.True(t, ok)
	require.Equal(t, pbxproj.KindProject, projObj.ISA)

	p := pbxproj.AsProject(projObj)
	mainGroupID, err := p.MainGroup()
	require.NoError(t, err)
	require.False(t, mainGroupID.Equal(projObj.ID))

	confObj := findByISA(doc, pbxproj.KindBuildConfiguration, func(o *serialized.Object) bool { return true })
	require.NotNil(t, confObj)
	name, err := pbxproj.AsBuildConfiguration(confObj).Name()
	require.NoError(t, err)
	require.Equal(t, "Release", name)
}

func TestBuildToolWithStaticLibDependency(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.cc"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cc"), nil, 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })

	proj := dslmodel.Project{
		Name: "demo",
		Configurations: map[string]dslmodel.Configuration{
			"Release": {Name: "Release"},
		},
		Libraries: []dslmodel.Library{
			{Name: "core", Kind: dslmodel.Static, Sources: []string{"src/a.cc"}},
		},
		Tools: []dslmodel.Tool{
			{Name: "app", Sources: []string{"src/main.cc"}, Libs: []string{"core"}},
		},
	}

	root, err := Build(proj)
	require.NoError(t, err)
	doc := root.Doc.(*builderDoc)

	libFileRef := findByISA(doc, pbxproj.KindFileReference, func(o *serialized.Object) bool {
		p, _ := pbxproj.AsFileReference(o).Path()
		return p == "libcore.a"
	})
	require.NotNil(t, libFileRef)
	sourceTree, err := pbxproj.AsFileReference(libFileRef).SourceTree()
	require.NoError(t, err)
	require.Equal(t, "BUILT_PRODUCTS_DIR", sourceTree)

	appTarget := findByISA(doc, pbxproj.KindNativeTarget, func(o *serialized.Object) bool {
		name, _ := pbxproj.AsTarget(o).Name()
		return name == "app"
	})
	require.NotNil(t, appTarget)
	frameworksPhase := findBuildPhaseOf(doc, appTarget, pbxproj.KindFrameworksBuildPhase)
	require.NotNil(t, frameworksPhase)
	files, err := pbxproj.AsBuildPhase(frameworksPhase).Files()
	require.NoError(t, err)
	require.Equal(t, 1, files.Len())

	buildFileID := files.Items[0].(*serialized.ID)
	buildFileObj, ok := doc.Lookup(*buildFileID)
	require.True(t, ok)
	fileRefID, err := pbxproj.AsBuildFile(buildFileObj).FileRef()
	require.NoError(t, err)
	require.True(t, fileRefID.Equal(libFileRef.ID))

	coreTarget := findByISA(doc, pbxproj.KindNativeTarget, func(o *serialized.Object) bool {
		name, _ := pbxproj.AsTarget(o).Name()
		return name == "core"
	})
	require.NotNil(t, coreTarget)
	sourcesPhase := findBuildPhaseOf(doc, coreTarget, pbxproj.KindSourcesBuildPhase)
	require.NotNil(t, sourcesPhase)
	sourceFiles, err := pbxproj.AsBuildPhase(sourcesPhase).Files()
	require.NoError(t, err)
	require.Equal(t, 1, sourceFiles.Len())

	srcGroup := findByISA(doc, pbxproj.KindGroup, func(o *serialized.Object) bool {
		p, _ := pbxproj.AsGroup(o).Path()
		return p == "src"
	})
	require.NotNil(t, srcGroup)
}

func findBuildPhaseOf(doc *builderDoc, target *serialized.Object, isa string) *serialized.Object {
	buildPhases, err := pbxproj.AsTarget(target).BuildPhases()
	if err != nil {
		return nil
	}
	for _, item := range buildPhases.Items {
		id, ok := item.(*serialized.ID)
		if !ok {
			continue
		}
		obj, ok := doc.Lookup(*id)
		if ok && obj.ISA == isa {
			return obj
		}
	}
	return nil
}
