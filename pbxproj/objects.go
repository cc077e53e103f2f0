package pbxproj

import "github.com/bitrise-tools/xcode-project-gen/serialized"

// The wrappers below give each of the 24 object kinds a typed accessor
// surface over the generic *serialized.Object the parser and builder
// both produce. They are views, not copies: every getter/setter reads or
// writes straight through to the object's backing Map, so there is
// nothing to keep in sync between a wrapper and its object.

// KindXcodeproj is the synthetic kind tag the document root always
// carries. It never appears as an "isa" literal inside a pbxproj file;
// the root dictionary reifies to it unconditionally.
const KindXcodeproj = "Xcodeproj"

// Kind names, exactly as they appear in a pbxproj's isa field.
const (
	KindProject                   = "PBXProject"
	KindGroup                     = "PBXGroup"
	KindVariantGroup              = "PBXVariantGroup"
	KindFileReference              = "PBXFileReference"
	KindBuildFile                 = "PBXBuildFile"
	KindAggregateTarget           = "PBXAggregateTarget"
	KindNativeTarget              = "PBXNativeTarget"
	KindLegacyTarget              = "PBXLegacyTarget"
	KindTargetDependency          = "PBXTargetDependency"
	KindContainerItemProxy        = "PBXContainerItemProxy"
	KindReferenceProxy            = "PBXReferenceProxy"
	KindBuildRule                 = "PBXBuildRule"
	KindBuildStyle                = "PBXBuildStyle"
	KindAppleScriptBuildPhase     = "PBXAppleScriptBuildPhase"
	KindCopyFilesBuildPhase       = "PBXCopyFilesBuildPhase"
	KindFrameworksBuildPhase      = "PBXFrameworksBuildPhase"
	KindHeadersBuildPhase         = "PBXHeadersBuildPhase"
	KindResourcesBuildPhase       = "PBXResourcesBuildPhase"
	KindShellScriptBuildPhase     = "PBXShellScriptBuildPhase"
	KindSourcesBuildPhase         = "PBXSourcesBuildPhase"
	KindBuildConfiguration        = "XCBuildConfiguration"
	KindConfigurationList         = "XCConfigurationList"
	KindVersionGroup              = "XCVersionGroup"
)

// AllKinds lists every isa this package knows a typed wrapper for, in
// declaration order. The writer does not use it: it emits the "objects"
// dictionary in stored key order, without per-kind section comments.
var AllKinds = []string{
	KindProject, KindGroup, KindVariantGroup, KindFileReference, KindBuildFile,
	KindAggregateTarget, KindNativeTarget, KindLegacyTarget, KindTargetDependency,
	KindContainerItemProxy, KindReferenceProxy, KindBuildRule, KindBuildStyle,
	KindAppleScriptBuildPhase, KindCopyFilesBuildPhase, KindFrameworksBuildPhase,
	KindHeadersBuildPhase, KindResourcesBuildPhase, KindShellScriptBuildPhase,
	KindSourcesBuildPhase, KindBuildConfiguration, KindConfigurationList, KindVersionGroup,
}

// Project is the PBXProject root: the single entry point to a project's
// main group, its targets, and its own build configuration list.
type Project struct{ *serialized.Object }

func AsProject(o *serialized.Object) *Project { return &Project{o} }

func (p *Project) MainGroup() (serialized.ID, error)           { return p.GetID("mainGroup") }
func (p *Project) SetMainGroup(id serialized.ID)                { p.SetID("mainGroup", id) }
func (p *Project) ProductRefGroup() (serialized.ID, error)      { return p.GetID("productRefGroup") }
func (p *Project) SetProductRefGroup(id serialized.ID)           { p.SetID("productRefGroup", id) }
func (p *Project) BuildConfigurationList() (serialized.ID, error) {
	return p.GetID("buildConfigurationList")
}
func (p *Project) SetBuildConfigurationList(id serialized.ID) {
	p.SetID("buildConfigurationList", id)
}
func (p *Project) Targets() (*serialized.Array, error) { return p.GetArray("targets", true) }
func (p *Project) CompatibilityVersion() (string, error) {
	return p.GetString("compatibilityVersion", "Xcode 3.2")
}
func (p *Project) SetCompatibilityVersion(v string) { p.SetString("compatibilityVersion", v) }
func (p *Project) ProjectDirPath() (string, error)  { return p.GetString("projectDirPath", "") }
func (p *Project) ProjectRoot() (string, error)      { return p.GetString("projectRoot", "") }
func (p *Project) DevelopmentRegion() (string, error) {
	return p.GetString("developmentRegion", "English")
}
func (p *Project) KnownRegions() (*serialized.Array, error) { return p.GetArray("knownRegions", true) }
func (p *Project) HasScannedForEncodings() int {
	return p.GetInteger("hasScannedForEncodings", 0)
}
func (p *Project) Attributes() (*serialized.Map, error) { return p.GetMap("attributes", true) }

// Group is both PBXGroup and PBXVariantGroup: a named, ordered list of
// child references that is also a filesystem path fragment.
type Group struct{ *serialized.Object }

func AsGroup(o *serialized.Object) *Group { return &Group{o} }

func (g *Group) Children() (*serialized.Array, error) { return g.GetArray("children", true) }
func (g *Group) Name() (string, error)                { return g.GetString("name", "") }
func (g *Group) SetName(v string)                      { g.SetString("name", v) }
func (g *Group) Path() (string, error)                 { return g.GetString("path", "") }
func (g *Group) SetPath(v string)                       { g.SetString("path", v) }
func (g *Group) SourceTree() (string, error)           { return g.GetString("sourceTree", "<group>") }
func (g *Group) SetSourceTree(v string)                 { g.SetString("sourceTree", v) }

// DisplayName is the label group-child sort order uses: name if set,
// otherwise its path, otherwise the comment on the
// object's own id.
func (g *Group) DisplayName() string {
	if name, _ := g.Name(); name != "" {
		return name
	}
	if path, _ := g.Path(); path != "" {
		return path
	}
	return g.ID.Comment
}

// FileReference is PBXFileReference: a leaf pointing at one file on
// disk, tagged with the Xcode file type the builder assigned it.
type FileReference struct{ *serialized.Object }

func AsFileReference(o *serialized.Object) *FileReference { return &FileReference{o} }

func (f *FileReference) Path() (string, error) { return f.GetString("path", "") }
func (f *FileReference) SetPath(v string)       { f.SetString("path", v) }
func (f *FileReference) Name() (string, error) { return f.GetString("name", "") }
func (f *FileReference) SetName(v string)       { f.SetString("name", v) }
func (f *FileReference) SourceTree() (string, error) {
	return f.GetString("sourceTree", "<group>")
}
func (f *FileReference) SetSourceTree(v string) { f.SetString("sourceTree", v) }
func (f *FileReference) LastKnownFileType() (string, error) {
	return f.GetString("lastKnownFileType", "")
}
func (f *FileReference) SetLastKnownFileType(v string) { f.SetString("lastKnownFileType", v) }
func (f *FileReference) ExplicitFileType() (string, error) {
	return f.GetString("explicitFileType", "")
}
func (f *FileReference) SetExplicitFileType(v string) { f.SetString("explicitFileType", v) }
func (f *FileReference) IncludeInIndex() int           { return f.GetInteger("includeInIndex", 1) }
func (f *FileReference) SetIncludeInIndex(v int)        { f.SetInteger("includeInIndex", v) }

// BuildFile is PBXBuildFile: the thin wrapper that lets one file
// reference appear, with distinct settings, in more than one build
// phase.
type BuildFile struct{ *serialized.Object }

func AsBuildFile(o *serialized.Object) *BuildFile { return &BuildFile{o} }

func (b *BuildFile) FileRef() (serialized.ID, error) { return b.GetID("fileRef") }
func (b *BuildFile) SetFileRef(id serialized.ID)      { b.SetID("fileRef", id) }

// Target is the shared surface of PBXNativeTarget, PBXAggregateTarget
// and PBXLegacyTarget: a name, a product, a build-configuration list,
// build phases and inter-target dependencies.
type Target struct{ *serialized.Object }

func AsTarget(o *serialized.Object) *Target { return &Target{o} }

func (t *Target) Name() (string, error)        { return t.GetString("name", "") }
func (t *Target) SetName(v string)              { t.SetString("name", v) }
func (t *Target) ProductName() (string, error) { return t.GetString("productName", "") }
func (t *Target) SetProductName(v string)       { t.SetString("productName", v) }
func (t *Target) ProductType() (string, error) { return t.GetString("productType", "") }
func (t *Target) SetProductType(v string)       { t.SetString("productType", v) }
func (t *Target) ProductReference() (serialized.ID, error) {
	return t.GetID("productReference")
}
func (t *Target) SetProductReference(id serialized.ID) { t.SetID("productReference", id) }
func (t *Target) BuildConfigurationList() (serialized.ID, error) {
	return t.GetID("buildConfigurationList")
}
func (t *Target) SetBuildConfigurationList(id serialized.ID) {
	t.SetID("buildConfigurationList", id)
}
func (t *Target) BuildPhases() (*serialized.Array, error) { return t.GetArray("buildPhases", true) }
func (t *Target) BuildRules() (*serialized.Array, error)  { return t.GetArray("buildRules", true) }
func (t *Target) Dependencies() (*serialized.Array, error) {
	return t.GetArray("dependencies", true)
}
func (t *Target) BuildArgumentsString() (string, error) {
	return t.GetString("buildArgumentsString", "")
}
func (t *Target) BuildToolPath() (string, error) { return t.GetString("buildToolPath", "") }

// TargetDependency is PBXTargetDependency: a link from one target to
// another, resolved either directly or through a container item proxy.
type TargetDependency struct{ *serialized.Object }

func AsTargetDependency(o *serialized.Object) *TargetDependency { return &TargetDependency{o} }

func (d *TargetDependency) Target() (serialized.ID, error)      { return d.GetID("target") }
func (d *TargetDependency) SetTarget(id serialized.ID)           { d.SetID("target", id) }
func (d *TargetDependency) TargetProxy() (serialized.ID, error) { return d.GetID("targetProxy") }
func (d *TargetDependency) SetTargetProxy(id serialized.ID)      { d.SetID("targetProxy", id) }

// ContainerItemProxy is PBXContainerItemProxy: the indirection
// PBXTargetDependency uses to name a target in (usually) this same
// project's container.
type ContainerItemProxy struct{ *serialized.Object }

func AsContainerItemProxy(o *serialized.Object) *ContainerItemProxy {
	return &ContainerItemProxy{o}
}

func (p *ContainerItemProxy) ContainerPortal() (serialized.ID, error) {
	return p.GetID("containerPortal")
}
func (p *ContainerItemProxy) SetContainerPortal(id serialized.ID) {
	p.SetID("containerPortal", id)
}
func (p *ContainerItemProxy) RemoteGlobalIDString() (serialized.ID, error) {
	return p.GetID("remoteGlobalIDString")
}
func (p *ContainerItemProxy) SetRemoteGlobalIDString(id serialized.ID) {
	p.SetID("remoteGlobalIDString", id)
}
func (p *ContainerItemProxy) ProxyType() int    { return p.GetInteger("proxyType", 1) }
func (p *ContainerItemProxy) SetProxyType(v int) { p.SetInteger("proxyType", v) }
func (p *ContainerItemProxy) RemoteInfo() (string, error) { return p.GetString("remoteInfo", "") }
func (p *ContainerItemProxy) SetRemoteInfo(v string)       { p.SetString("remoteInfo", v) }

// ReferenceProxy is PBXReferenceProxy: a reference to a product built by
// another project, reached through a container item proxy.
type ReferenceProxy struct{ *serialized.Object }

func AsReferenceProxy(o *serialized.Object) *ReferenceProxy { return &ReferenceProxy{o} }

func (r *ReferenceProxy) Path() (string, error)            { return r.GetString("path", "") }
func (r *ReferenceProxy) SetPath(v string)                  { r.SetString("path", v) }
func (r *ReferenceProxy) FileType() (string, error)        { return r.GetString("fileType", "") }
func (r *ReferenceProxy) SetFileType(v string)               { r.SetString("fileType", v) }
func (r *ReferenceProxy) RemoteRef() (serialized.ID, error) { return r.GetID("remoteRef") }
func (r *ReferenceProxy) SetRemoteRef(id serialized.ID)      { r.SetID("remoteRef", id) }
func (r *ReferenceProxy) SourceTree() (string, error) {
	return r.GetString("sourceTree", "BUILT_PRODUCTS_DIR")
}

// BuildRule is PBXBuildRule: a custom per-file-type build step.
type BuildRule struct{ *serialized.Object }

func AsBuildRule(o *serialized.Object) *BuildRule { return &BuildRule{o} }

func (r *BuildRule) CompilerSpec() (string, error) { return r.GetString("compilerSpec", "") }
func (r *BuildRule) FilePatterns() (string, error) { return r.GetString("filePatterns", "") }
func (r *BuildRule) FileType() (string, error)     { return r.GetString("fileType", "") }
func (r *BuildRule) IsEditable() int                { return r.GetInteger("isEditable", 1) }
func (r *BuildRule) OutputFiles() (*serialized.Array, error) {
	return r.GetArray("outputFiles", true)
}
func (r *BuildRule) Script() (string, error) { return r.GetString("script", "") }

// BuildStyle is PBXBuildStyle: a legacy Xcode 3-era build configuration
// kept for round-tripping old project files, not produced by the
// builder.
type BuildStyle struct{ *serialized.Object }

func AsBuildStyle(o *serialized.Object) *BuildStyle { return &BuildStyle{o} }

func (s *BuildStyle) Name() (string, error) { return s.GetString("name", "") }
func (s *BuildStyle) BuildSettings() (*serialized.Map, error) {
	return s.GetMap("buildSettings", true)
}

// BuildPhase is the shared surface of every PBX*BuildPhase kind: an
// ordered list of build files plus the two flags every phase carries.
type BuildPhase struct{ *serialized.Object }

func AsBuildPhase(o *serialized.Object) *BuildPhase { return &BuildPhase{o} }

func (p *BuildPhase) Files() (*serialized.Array, error) { return p.GetArray("files", true) }
func (p *BuildPhase) BuildActionMask() int {
	return p.GetInteger("buildActionMask", 2147483647)
}
func (p *BuildPhase) SetBuildActionMask(v int) { p.SetInteger("buildActionMask", v) }
func (p *BuildPhase) RunOnlyForDeploymentPostprocessing() int {
	return p.GetInteger("runOnlyForDeploymentPostprocessing", 0)
}
func (p *BuildPhase) SetRunOnlyForDeploymentPostprocessing(v int) {
	p.SetInteger("runOnlyForDeploymentPostprocessing", v)
}

// ShellScriptBuildPhase adds the script text and shell path that
// PBXShellScriptBuildPhase carries on top of the shared BuildPhase
// surface.
type ShellScriptBuildPhase struct{ *serialized.Object }

func AsShellScriptBuildPhase(o *serialized.Object) *ShellScriptBuildPhase {
	return &ShellScriptBuildPhase{o}
}

func (s *ShellScriptBuildPhase) Files() (*serialized.Array, error) { return s.GetArray("files", true) }
func (s *ShellScriptBuildPhase) ShellPath() (string, error) {
	return s.GetString("shellPath", "/bin/sh")
}
func (s *ShellScriptBuildPhase) SetShellPath(v string) { s.SetString("shellPath", v) }
func (s *ShellScriptBuildPhase) ShellScript() (string, error) {
	return s.GetString("shellScript", "")
}
func (s *ShellScriptBuildPhase) SetShellScript(v string) { s.SetString("shellScript", v) }
func (s *ShellScriptBuildPhase) InputPaths() (*serialized.Array, error) {
	return s.GetArray("inputPaths", true)
}
func (s *ShellScriptBuildPhase) OutputPaths() (*serialized.Array, error) {
	return s.GetArray("outputPaths", true)
}

// CopyFilesBuildPhase adds the destination path/subfolder spec that
// PBXCopyFilesBuildPhase carries on top of the shared BuildPhase
// surface.
type CopyFilesBuildPhase struct{ *serialized.Object }

func AsCopyFilesBuildPhase(o *serialized.Object) *CopyFilesBuildPhase {
	return &CopyFilesBuildPhase{o}
}

func (c *CopyFilesBuildPhase) Files() (*serialized.Array, error) { return c.GetArray("files", true) }
func (c *CopyFilesBuildPhase) DstPath() (string, error)          { return c.GetString("dstPath", "") }
func (c *CopyFilesBuildPhase) SetDstPath(v string)                { c.SetString("dstPath", v) }
func (c *CopyFilesBuildPhase) DstSubfolderSpec() int {
	return c.GetInteger("dstSubfolderSpec", 0)
}
func (c *CopyFilesBuildPhase) SetDstSubfolderSpec(v int) { c.SetInteger("dstSubfolderSpec", v) }

// BuildConfiguration is XCBuildConfiguration: one named bag of build
// settings.
type BuildConfiguration struct{ *serialized.Object }

func AsBuildConfiguration(o *serialized.Object) *BuildConfiguration {
	return &BuildConfiguration{o}
}

func (c *BuildConfiguration) Name() (string, error) { return c.GetString("name", "") }
func (c *BuildConfiguration) SetName(v string)        { c.SetString("name", v) }
func (c *BuildConfiguration) BuildSettings() (*serialized.Map, error) {
	return c.GetMap("buildSettings", true)
}

// ConfigurationList is XCConfigurationList: the ordered set of named
// build configurations (Debug, Release, ...) a project or target
// chooses among.
type ConfigurationList struct{ *serialized.Object }

func AsConfigurationList(o *serialized.Object) *ConfigurationList {
	return &ConfigurationList{o}
}

func (l *ConfigurationList) BuildConfigurations() (*serialized.Array, error) {
	return l.GetArray("buildConfigurations", true)
}
func (l *ConfigurationList) DefaultConfigurationName() (string, error) {
	return l.GetString("defaultConfigurationName", "")
}
func (l *ConfigurationList) SetDefaultConfigurationName(v string) {
	l.SetString("defaultConfigurationName", v)
}
func (l *ConfigurationList) DefaultConfigurationIsVisible() int {
	return l.GetInteger("defaultConfigurationIsVisible", 0)
}

// VersionGroup is XCVersionGroup: a Core Data model's set of versioned
// variants, round-tripped but never produced by the builder.
type VersionGroup struct{ *serialized.Object }

func AsVersionGroup(o *serialized.Object) *VersionGroup { return &VersionGroup{o} }

func (g *VersionGroup) Children() (*serialized.Array, error) { return g.GetArray("children", true) }
func (g *VersionGroup) CurrentVersion() (serialized.ID, error) {
	return g.GetID("currentVersion")
}
func (g *VersionGroup) Path() (string, error)       { return g.GetString("path", "") }
func (g *VersionGroup) SourceTree() (string, error) { return g.GetString("sourceTree", "<group>") }

// Xcodeproj is the document root: the flat object arena keyed by 24-hex
// id, plus the pointer to the single PBXProject that anchors everything
// else.
type Xcodeproj struct{ *serialized.Object }

func AsXcodeproj(o *serialized.Object) *Xcodeproj { return &Xcodeproj{o} }

func (x *Xcodeproj) ArchiveVersion() int { return x.GetInteger("archiveVersion", 1) }
func (x *Xcodeproj) SetArchiveVersion(v int) { x.SetInteger("archiveVersion", v) }
func (x *Xcodeproj) Classes() (*serialized.Map, error) { return x.GetMap("classes", true) }
func (x *Xcodeproj) ObjectVersion() int { return x.GetInteger("objectVersion", 46) }
func (x *Xcodeproj) SetObjectVersion(v int) { x.SetInteger("objectVersion", v) }
func (x *Xcodeproj) Objects() (*serialized.Map, error) { return x.GetMap("objects", true) }
func (x *Xcodeproj) RootObject() (serialized.ID, error) { return x.GetID("rootObject") }
func (x *Xcodeproj) SetRootObject(id serialized.ID) { x.SetID("rootObject", id) }
