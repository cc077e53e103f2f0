// Package serialized implements the generic, key-ordered value model that
// backs a pbxproj document: literals, 96-bit id references, arrays, and
// comment-carrying key-ordered maps. A pbxproj Object is a Map that also
// carries an isa kind tag and its own identity.
package serialized

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Value is the tagged union every node of a pbxproj document is built
// from. The concrete variants are Literal, *ID, *Array and *Map (of which
// *Object is a specialization).
type Value interface {
	isValue()
}

// Literal is a bare or quoted ASCII property-list string.
type Literal string

func (Literal) isValue() {}

// ID is a 96-bit opaque object identity: 4 bytes of big-endian local
// counter followed by the document's 8-byte random salt. Comment is
// metadata for pretty-printing only; it never participates in equality
// or ordering.
type ID struct {
	Bytes   [12]byte
	Comment string
}

func (*ID) isValue() {}

// String renders the id as 24 uppercase hex digits, without its comment.
func (id ID) String() string {
	return strings.ToUpper(hex.EncodeToString(id.Bytes[:]))
}

// Equal compares the raw 12 identity bytes; the comment is not identity.
func (id ID) Equal(o ID) bool {
	return id.Bytes == o.Bytes
}

// Less gives IDs a correct lexicographic ordering over their raw bytes.
func (id ID) Less(o ID) bool {
	return bytes.Compare(id.Bytes[:], o.Bytes[:]) < 0
}

// ParseID decodes a 24 uppercase-hex-digit literal into an ID. A literal
// that fails IsIDLiteral is rejected with an error.
func ParseID(s string) (ID, error) {
	if !IsIDLiteral(s) {
		return ID{}, fmt.Errorf("serialized: %q is not a 24-digit hex id", s)
	}
	var id ID
	if _, err := hex.Decode(id.Bytes[:], []byte(s)); err != nil {
		return ID{}, fmt.Errorf("serialized: decoding id %q: %w", s, err)
	}
	return id, nil
}

// IsIDLiteral is the id heuristic from §4.C: a literal is an id iff it is
// exactly 24 characters of [0-9A-F].
func IsIDLiteral(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// Array is an ordered sequence of values.
type Array struct {
	Items []Value
}

func (*Array) isValue() {}

// NewArray returns an empty array.
func NewArray() *Array {
	return &Array{}
}

// Add appends a value to the array.
func (a *Array) Add(v Value) {
	a.Items = append(a.Items, v)
}

// AddID is a convenience wrapper for the common case of linking to
// another object by id.
func (a *Array) AddID(id ID) {
	a.Add(&ID{Bytes: id.Bytes, Comment: id.Comment})
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Items)
}
