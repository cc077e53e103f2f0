package pbxproj

import "github.com/bitrise-tools/xcode-project-gen/serialized"

// Document reads buf and returns the root Xcodeproj object, with its
// full object graph reachable through the returned value's embedded
// Map and, for every "isa"-tagged object, through Lookup.
//
// A non-nil error is either a ParseError (the byte stream is not
// well-formed OpenStep-ASCII) or a schema violation (the stream parsed
// but produced an inconsistent document, e.g. a duplicate key).
func Document(buf []byte) (*serialized.Object, error) {
	b := newDocumentBuilder()
	if err := Parse(buf, b); err != nil {
		return nil, err
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.root, nil
}
