// Package builder turns a dslmodel.Project description into a complete
// pbxproj object graph: an empty project skeleton, one native target per
// library and tool, their source and framework build phases, and the
// group tree mirroring each target's source layout.
package builder

import (
	"path"
	"sort"
	"strings"

	"github.com/bitrise-tools/xcode-project-gen/dslmodel"
	"github.com/bitrise-tools/xcode-project-gen/filetype"
	"github.com/bitrise-tools/xcode-project-gen/globre"
	"github.com/bitrise-tools/xcode-project-gen/idgen"
	"github.com/bitrise-tools/xcode-project-gen/pbxproj"
	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/pkg/errors"
)

// productKind is the (file type, product type) pair an archive/dylib/tool
// target needs for its product reference and native target. The output
// file name is computed separately (libOutput for libraries, the bare
// name for tools).
type productKind struct {
	fileType    string
	productType string
}

var (
	staticLibKind  = productKind{"archive.ar", "com.apple.product-type.library.static"}
	dynamicLibKind = productKind{"compiled.mach-o.dylib", "com.apple.product-type.library.dynamic"}
	toolKind       = productKind{"compiled.mach-o.executable", "com.apple.product-type.tool"}
)

func libOutput(lib dslmodel.Library) (productKind, string) {
	if lib.Kind == dslmodel.Static {
		return staticLibKind, "lib" + lib.Name + ".a"
	}
	return dynamicLibKind, lib.Name + ".dylib"
}

// libDeps resolves a list of dependency names (library targets this
// project also builds) to the product filenames their targets output,
// the same names getProductReference later looks up in the products
// group.
func libDeps(libsByName map[string]dslmodel.Library, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		lib, ok := libsByName[name]
		if !ok {
			continue
		}
		_, product := libOutput(lib)
		out = append(out, product)
	}
	return out
}

// builderDoc is the Document/allocator pair every object in a
// generated project is minted through.
type builderDoc struct {
	alloc   *idgen.Allocator
	objects map[string]*serialized.Object
	order   []*serialized.Object
}

func newBuilderDoc() (*builderDoc, error) {
	alloc, err := idgen.NewAllocator()
	if err != nil {
		return nil, errors.Wrap(err, "builder: allocating id salt")
	}
	return &builderDoc{alloc: alloc, objects: map[string]*serialized.Object{}}, nil
}

func (d *builderDoc) Lookup(id serialized.ID) (*serialized.Object, bool) {
	o, ok := d.objects[id.String()]
	return o, ok
}

// create mints a fresh object of the given isa, registers it in the
// document, and returns the object; its ID carries comment for
// pretty-printing.
func (d *builderDoc) create(isa, comment string) *serialized.Object {
	id := d.alloc.Mint(comment)
	obj := serialized.NewObject(isa, id, serialized.NewMap(), d)
	d.objects[id.String()] = obj
	d.order = append(d.order, obj)
	return obj
}

// Project holds the finished object graph plus the handles the two
// build passes need to keep threading state between them.
type Project struct {
	Doc     *builderDoc
	Root    *serialized.Object
	project *pbxproj.Project
}

// Build constructs the complete object graph for proj: an empty project
// skeleton, a native target per library then per tool (library targets
// created and linked first, exactly like the order libraries must exist
// before tools that depend on them), and the generated file references
// and groups for every expanded source glob.
func Build(proj dslmodel.Project) (*serialized.Object, error) {
	doc, err := newBuilderDoc()
	if err != nil {
		return nil, err
	}

	p := &Project{Doc: doc}
	if err := p.createEmptyProject(proj); err != nil {
		return nil, errors.Wrap(err, "builder: creating empty project")
	}

	libsByName := map[string]dslmodel.Library{}
	for _, lib := range proj.Libraries {
		libsByName[lib.Name] = lib
	}

	libTargets := map[string]*pbxproj.Target{}
	for _, lib := range proj.Libraries {
		kind, product := libOutput(lib)
		sources, err := expandSources(lib.Sources)
		if err != nil {
			return nil, errors.Wrapf(err, "builder: expanding sources for library %q", lib.Name)
		}
		target, err := p.createNativeTarget(proj, lib.Name, product, kind, sources)
		if err != nil {
			return nil, errors.Wrapf(err, "builder: creating library target %q", lib.Name)
		}
		libTargets[lib.Name] = target
	}
	for _, lib := range proj.Libraries {
		deps := []string(nil)
		if lib.Kind != dslmodel.Static {
			deps = libDeps(libsByName, lib.Libs)
		}
		if err := p.linkNativeTarget(libTargets[lib.Name], deps); err != nil {
			return nil, errors.Wrapf(err, "builder: linking library target %q", lib.Name)
		}
	}

	toolTargets := map[string]*pbxproj.Target{}
	for _, tool := range proj.Tools {
		sources, err := expandSources(tool.Sources)
		if err != nil {
			return nil, errors.Wrapf(err, "builder: expanding sources for tool %q", tool.Name)
		}
		target, err := p.createNativeTarget(proj, tool.Name, tool.Name, toolKind, sources)
		if err != nil {
			return nil, errors.Wrapf(err, "builder: creating tool target %q", tool.Name)
		}
		toolTargets[tool.Name] = target
	}
	for _, tool := range proj.Tools {
		deps := libDeps(libsByName, tool.Libs)
		if err := p.linkNativeTarget(toolTargets[tool.Name], deps); err != nil {
			return nil, errors.Wrapf(err, "builder: linking tool target %q", tool.Name)
		}
	}

	return p.assembleDocument()
}

// assembleDocument wraps every object this build minted into the flat
// "objects" dictionary a pbxproj file keeps at its top level, and
// returns the Xcodeproj document root that holds it plus the
// rootObject pointer at the PBXProject.
func (p *Project) assembleDocument() (*serialized.Object, error) {
	root := serialized.NewObject(pbxproj.KindXcodeproj, serialized.ID{}, serialized.NewMap(), p.Doc)
	doc := pbxproj.AsXcodeproj(root)
	doc.SetArchiveVersion(1)
	doc.SetObjectVersion(46)
	if _, err := doc.Classes(); err != nil {
		return nil, err
	}

	objects, err := doc.Objects()
	if err != nil {
		return nil, err
	}
	for _, obj := range p.Doc.order {
		if err := objects.Put(obj.ID.String(), obj.ID.Comment, obj); err != nil {
			return nil, err
		}
	}
	doc.SetRootObject(p.Root.ID)

	return root, nil
}

func expandSources(globs []string) ([]string, error) {
	var out []string
	for _, g := range globs {
		out = append(out, globre.Match(g)...)
	}
	return out, nil
}

// createEmptyProject mints the PBXProject, its build configuration list
// (one XCBuildConfiguration per named project configuration, defaulted
// the way a fresh Xcode project defaults them), and the main/products
// group pair.
func (p *Project) createEmptyProject(proj dslmodel.Project) error {
	root := p.Doc.create(pbxproj.KindProject, "Project Object")
	p.Root = root
	p.project = pbxproj.AsProject(root)

	configList := p.Doc.create(pbxproj.KindConfigurationList,
		`Build configuration list for PBXProject "`+proj.Name+`"`)
	p.project.SetBuildConfigurationList(configList.ID)
	cl := pbxproj.AsConfigurationList(configList)
	configs, err := cl.BuildConfigurations()
	if err != nil {
		return err
	}

	for _, name := range sortedConfigNames(proj.Configurations) {
		cfg := proj.Configurations[name]

		sdkroot := valueOr(cfg.Vars, "x_apple_sdkroot", "macosx")
		target := valueOr(cfg.Vars, "x_apple_target", "10.10")
		optimization := valueOr(cfg.Vars, "optimization", "3")

		confObj := p.Doc.create(pbxproj.KindBuildConfiguration, name)
		conf := pbxproj.AsBuildConfiguration(confObj)
		conf.SetName(name)
		settings, err := conf.BuildSettings()
		if err != nil {
			return err
		}
		settings.SetString("CLANG_CXX_LANGUAGE_STANDARD", "gnu++0x")
		settings.SetString("GCC_C_LANGUAGE_STANDARD", "gnu11")
		settings.SetString("GCC_OPTIMIZATION_LEVEL", optimization)
		switch len(cfg.Defines) {
		case 0:
		case 1:
			settings.SetString("GCC_PREPROCESSOR_DEFINITIONS", cfg.Defines[0])
		default:
			defines := serialized.NewArray()
			for _, d := range cfg.Defines {
				defines.Add(serialized.Literal(d))
			}
			settings.SetArray("GCC_PREPROCESSOR_DEFINITIONS", defines)
		}
		settings.SetString("MACOSX_DEPLOYMENT_TARGET", target)
		settings.SetString("SDKROOT", sdkroot)

		configs.AddID(confObj.ID)
	}

	mainGroupObj := p.Doc.create(pbxproj.KindGroup, "")
	mainGroup := pbxproj.AsGroup(mainGroupObj)
	mainGroup.SetSourceTree("<group>")
	p.project.SetMainGroup(mainGroupObj.ID)

	productsGroupObj := p.Doc.create(pbxproj.KindGroup, "Products")
	productsGroup := pbxproj.AsGroup(productsGroupObj)
	productsGroup.SetSourceTree("<group>")
	productsGroup.SetName("Products")
	children, err := mainGroup.Children()
	if err != nil {
		return err
	}
	children.AddID(productsGroupObj.ID)
	p.project.SetProductRefGroup(productsGroupObj.ID)

	return nil
}

func sortedConfigNames(configs map[string]dslmodel.Configuration) []string {
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func valueOr(vars map[string]string, key, def string) string {
	if v, ok := vars[key]; ok {
		return v
	}
	return def
}

// createNativeTarget mints a PBXNativeTarget for one library or tool: a
// per-target configuration list, a sources build phase populated from
// the expanded source list, and a product file reference filed under
// the products group.
func (p *Project) createNativeTarget(proj dslmodel.Project, targetName, targetProduct string, kind productKind, sources []string) (*pbxproj.Target, error) {
	mainGroupID, err := p.project.MainGroup()
	if err != nil {
		return nil, err
	}
	mainGroupObj, _ := p.Doc.Lookup(mainGroupID)
	mainGroup := pbxproj.AsGroup(mainGroupObj)

	productsGroupID, err := p.project.ProductRefGroup()
	if err != nil {
		return nil, err
	}
	productsGroupObj, _ := p.Doc.Lookup(productsGroupID)
	productsGroup := pbxproj.AsGroup(productsGroupObj)

	configListObj := p.Doc.create(pbxproj.KindConfigurationList,
		`Build configuration list for PBXNativeTarget "`+targetName+`"`)
	configList := pbxproj.AsConfigurationList(configListObj)
	configs, err := configList.BuildConfigurations()
	if err != nil {
		return nil, err
	}
	for _, name := range sortedConfigNames(proj.Configurations) {
		confObj := p.Doc.create(pbxproj.KindBuildConfiguration, name)
		conf := pbxproj.AsBuildConfiguration(confObj)
		conf.SetName(name)
		settings, err := conf.BuildSettings()
		if err != nil {
			return nil, err
		}
		settings.SetString("PRODUCT_NAME", "$(TARGET_NAME)")
		configs.AddID(confObj.ID)
	}

	sourcesPhaseObj := p.Doc.create(pbxproj.KindSourcesBuildPhase, "Sources")
	sourcesPhase := pbxproj.AsBuildPhase(sourcesPhaseObj)
	sourcesPhase.SetBuildActionMask(2147483647)
	sourcesPhase.SetRunOnlyForDeploymentPostprocessing(0)
	phaseFiles, err := sourcesPhase.Files()
	if err != nil {
		return nil, err
	}

	seenBuildFiles := map[string]bool{}
	for _, src := range sources {
		entry := filetype.Lookup(strings.TrimPrefix(path.Ext(src), "."))
		fileRefObj, err := p.fileReferenceForPath(mainGroup, src)
		if err != nil {
			return nil, err
		}
		fileRef := pbxproj.AsFileReference(fileRefObj)
		fileRef.SetLastKnownFileType(entry.XcodeType)
		fileRef.SetIncludeInIndex(1)

		if !entry.Flags.Has(filetype.Compiler) {
			continue
		}
		if seenBuildFiles[fileRefObj.ID.String()] {
			continue
		}
		seenBuildFiles[fileRefObj.ID.String()] = true

		buildFileObj := p.Doc.create(pbxproj.KindBuildFile, fileRefObj.ID.Comment+" in Sources")
		buildFile := pbxproj.AsBuildFile(buildFileObj)
		buildFile.SetFileRef(fileRefObj.ID)
		phaseFiles.AddID(buildFileObj.ID)
	}

	productObj := p.Doc.create(pbxproj.KindFileReference, targetProduct)
	product := pbxproj.AsFileReference(productObj)
	product.SetExplicitFileType(kind.fileType)
	product.SetIncludeInIndex(0)
	product.SetPath(targetProduct)
	product.SetSourceTree("BUILT_PRODUCTS_DIR")
	productsChildren, err := productsGroup.Children()
	if err != nil {
		return nil, err
	}
	productsChildren.AddID(productObj.ID)

	targetObj := p.Doc.create(pbxproj.KindNativeTarget, targetName)
	target := pbxproj.AsTarget(targetObj)
	target.SetName(targetName)
	target.SetProductName(targetName)
	target.SetProductReference(productObj.ID)
	target.SetProductType(kind.productType)
	target.SetBuildConfigurationList(configListObj.ID)
	buildPhases, err := target.BuildPhases()
	if err != nil {
		return nil, err
	}
	buildPhases.AddID(sourcesPhaseObj.ID)

	targets, err := p.project.Targets()
	if err != nil {
		return nil, err
	}
	targets.AddID(targetObj.ID)

	return target, nil
}

// linkNativeTarget adds a PBXFrameworksBuildPhase to target, one build
// file per resolvable dependency product name found in the products
// group. A dependency this project doesn't build (no matching product)
// is silently skipped, matching the lookup-or-nothing behavior of the
// original product reference search.
func (p *Project) linkNativeTarget(target *pbxproj.Target, libraries []string) error {
	productsGroupID, err := p.project.ProductRefGroup()
	if err != nil {
		return err
	}
	productsGroupObj, _ := p.Doc.Lookup(productsGroupID)
	productsGroup := pbxproj.AsGroup(productsGroupObj)

	frameworksObj := p.Doc.create(pbxproj.KindFrameworksBuildPhase, "Frameworks")
	frameworks := pbxproj.AsBuildPhase(frameworksObj)
	frameworks.SetBuildActionMask(2147483647)
	frameworks.SetRunOnlyForDeploymentPostprocessing(0)
	files, err := frameworks.Files()
	if err != nil {
		return err
	}

	for _, libProduct := range libraries {
		fileRefObj := p.productReference(productsGroup, libProduct)
		if fileRefObj == nil {
			continue
		}
		buildFileObj := p.Doc.create(pbxproj.KindBuildFile, fileRefObj.ID.Comment+" in Frameworks")
		buildFile := pbxproj.AsBuildFile(buildFileObj)
		buildFile.SetFileRef(fileRefObj.ID)
		files.AddID(buildFileObj.ID)
	}

	buildPhases, err := target.BuildPhases()
	if err != nil {
		return err
	}
	buildPhases.AddID(frameworksObj.ID)
	return nil
}

// productReference finds the file reference in the products group whose
// path matches name, the same name libOutput assigned when that
// target's product was created.
func (p *Project) productReference(productsGroup *pbxproj.Group, name string) *serialized.Object {
	children, err := productsGroup.Children()
	if err != nil {
		return nil
	}
	for _, item := range children.Items {
		id, ok := item.(*serialized.ID)
		if !ok {
			continue
		}
		obj, ok := p.Doc.Lookup(*id)
		if !ok || obj.ISA != pbxproj.KindFileReference {
			continue
		}
		fileRef := pbxproj.AsFileReference(obj)
		if path, _ := fileRef.Path(); path == name {
			return obj
		}
	}
	return nil
}

// fileReferenceForPath walks (creating as needed) the group chain
// matching path's directory components under root, then finds or
// creates the leaf file reference, mirroring how a freshly generated
// project's group tree always matches its source layout.
func (p *Project) fileReferenceForPath(root *pbxproj.Group, srcPath string) (*serialized.Object, error) {
	parts := strings.Split(srcPath, "/")
	if len(parts) == 0 {
		return nil, errors.Errorf("builder: empty source path")
	}

	current := root
	for i := 0; i < len(parts)-1; i++ {
		comp := parts[i]
		children, err := current.Children()
		if err != nil {
			return nil, err
		}
		found, err := p.findGroupByPath(children, comp)
		if err != nil {
			return nil, err
		}
		if found == nil {
			groupObj := p.Doc.create(pbxproj.KindGroup, comp)
			group := pbxproj.AsGroup(groupObj)
			group.SetName(comp)
			group.SetPath(comp)
			group.SetSourceTree("<group>")
			children.AddID(groupObj.ID)
			found = group
		}
		current = found
	}

	leaf := parts[len(parts)-1]
	children, err := current.Children()
	if err != nil {
		return nil, err
	}
	fileRefObj, err := p.findFileRefByPath(children, leaf)
	if err != nil {
		return nil, err
	}
	if fileRefObj != nil {
		return fileRefObj, nil
	}

	fileRefObj = p.Doc.create(pbxproj.KindFileReference, leaf)
	fileRef := pbxproj.AsFileReference(fileRefObj)
	fileRef.SetPath(leaf)
	fileRef.SetSourceTree("<group>")
	children.AddID(fileRefObj.ID)
	return fileRefObj, nil
}

func (p *Project) findGroupByPath(children *serialized.Array, comp string) (*pbxproj.Group, error) {
	for _, item := range children.Items {
		id, ok := item.(*serialized.ID)
		if !ok {
			continue
		}
		obj, ok := p.Doc.Lookup(*id)
		if !ok || obj.ISA != pbxproj.KindGroup {
			continue
		}
		group := pbxproj.AsGroup(obj)
		if groupPath, _ := group.Path(); groupPath == comp {
			return group, nil
		}
	}
	return nil, nil
}

func (p *Project) findFileRefByPath(children *serialized.Array, leaf string) (*serialized.Object, error) {
	for _, item := range children.Items {
		id, ok := item.(*serialized.ID)
		if !ok {
			continue
		}
		obj, ok := p.Doc.Lookup(*id)
		if !ok || obj.ISA != pbxproj.KindFileReference {
			continue
		}
		fileRef := pbxproj.AsFileReference(obj)
		if fileRefPath, _ := fileRef.Path(); fileRefPath == leaf {
			return obj, nil
		}
	}
	return nil, nil
}
