// Package dslmodel is the data contract the builder consumes: the
// in-memory shape a higher-level project description is parsed into
// before reaching this module. Parsing that description is out of
// scope here; this package only names the shape.
package dslmodel

// LibraryKind distinguishes a static archive from a dynamic library
// target.
type LibraryKind string

const (
	Static  LibraryKind = "static"
	Dynamic LibraryKind = "dynamic"
)

// Library is one buildable library target: a name, its kind, the globre
// expressions its sources are expanded from, and the names of the other
// targets it links against.
type Library struct {
	Name    string
	Kind    LibraryKind
	Sources []string
	Libs    []string
}

// Tool is a buildable executable target.
type Tool struct {
	Name    string
	Sources []string
	Libs    []string
}

// Configuration is one named build configuration (e.g. "Debug",
// "Release"): its build-setting overrides and preprocessor defines.
type Configuration struct {
	Name    string
	Vars    map[string]string
	Defines []string
}

// Project is the complete description the builder turns into an Xcode
// project graph.
type Project struct {
	Name           string
	Libraries      []Library
	Tools          []Tool
	Configurations map[string]Configuration
}
