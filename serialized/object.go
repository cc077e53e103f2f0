package serialized

// Document is the arena every Object belongs to: the table objects are
// minted into and looked up from when a reference needs resolving (e.g.
// sorting a group's children by the referenced object's display name).
// It replaces the raw owner back-pointer the original object model used
// with an explicit table passed by reference, per the design notes.
type Document interface {
	// Lookup resolves an id to the object minted for it, if any.
	Lookup(id ID) (*Object, bool)
}

// Object is a Map that additionally owns an identity (ID) and an isa
// kind tag, and carries a reference to the Document it was minted into
// so lookups (e.g. PBXGroup child sorting) can resolve other ids.
type Object struct {
	Map
	ISA string
	ID  ID
	Doc Document
}

func (*Object) isValue() {}

// NewObject wraps an already-populated Map (as accumulated by the
// parser before the isa reification hook fires) into a typed Object,
// preserving key order and entries.
func NewObject(isa string, id ID, m *Map, doc Document) *Object {
	obj := &Object{ISA: isa, ID: id, Doc: doc}
	if m != nil {
		obj.Map = *m
	} else {
		obj.Map = *NewMap()
	}
	return obj
}
