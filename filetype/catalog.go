// Package filetype is the static extension-to-Xcode-type table the
// project builder consults when it turns a source path into a
// PBXFileReference and decides which build phase, if any, should carry
// it.
package filetype

// Flag is a bitset of the capabilities an extension's Xcode type grants
// a file: whether it compiles, assembles, links, or is a resource.
type Flag uint8

const (
	Compiler Flag = 1 << iota
	Assembler
	Header
	LinkLibrary
	LinkFramework
	Resource
	Application
)

// Has reports whether f includes want.
func (f Flag) Has(want Flag) bool { return f&want != 0 }

// Entry is one catalog row: the Xcode UTI the builder assigns a
// PBXFileReference's lastKnownFileType, and the capability flags that
// drive which build phase (if any) the builder files it under.
type Entry struct {
	XcodeType string
	Flags     Flag
}

const unknownXcodeType = "text"

var byExtension = map[string]Entry{
	"c":         {"sourcecode.c.c", Compiler},
	"m":         {"sourcecode.c.objc", Compiler},
	"mm":        {"sourcecode.cpp.objcpp", Compiler},
	"cc":        {"sourcecode.cpp.cpp", Compiler},
	"cpp":       {"sourcecode.cpp.cpp", Compiler},
	"h":         {"sourcecode.c.h", Header},
	"hh":        {"sourcecode.cpp.h", Header},
	"hpp":       {"sourcecode.cpp.h", Header},
	"plist":     {"text.plist.xml", Resource},
	"txt":       {"text", Resource},
	"a":         {"archive.ar", LinkLibrary},
	"app":       {"wrapper.application", Application},
	"bundle":    {"wrapper.cfbundle", Resource},
	"framework": {"wrapper.framework", LinkFramework},
}

// Lookup returns the catalog entry for extension (without its leading
// dot). An extension the table doesn't recognize yields the unknown
// entry: Xcode type "text" and no flags.
func Lookup(extension string) Entry {
	if e, ok := byExtension[extension]; ok {
		return e
	}
	return Entry{XcodeType: unknownXcodeType}
}
