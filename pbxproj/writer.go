package pbxproj

import (
	"sort"
	"strings"

	"github.com/bitrise-tools/xcode-project-gen/serialized"
)

// Write renders root (the Xcodeproj object a document's root dictionary
// reifies to) back into OpenStep-ASCII plist text, banner included.
func Write(root *serialized.Object) []byte {
	var sb strings.Builder
	sb.WriteString(slashBang)
	sb.WriteByte('\n')
	sb.WriteString("{\n")
	writeMapBody(&sb, &root.Map, 1)
	sb.WriteString("}\n")
	return []byte(sb.String())
}

func writeValue(sb *strings.Builder, v serialized.Value, indent int) {
	switch val := v.(type) {
	case *serialized.Object:
		sb.WriteString("{\n")
		writeIndent(sb, indent+1)
		sb.WriteString("isa = ")
		writeLiteral(sb, val.ISA)
		sb.WriteString(";\n")
		if val.ISA == KindGroup || val.ISA == KindVariantGroup {
			sortGroupChildren(val)
		}
		writeMapBody(sb, &val.Map, indent+1)
		writeIndent(sb, indent)
		sb.WriteByte('}')
	case *serialized.Map:
		sb.WriteString("{\n")
		writeMapBody(sb, val, indent+1)
		writeIndent(sb, indent)
		sb.WriteByte('}')
	case *serialized.Array:
		sb.WriteString("(\n")
		for _, item := range val.Items {
			writeIndent(sb, indent+1)
			writeValue(sb, item, indent+1)
			sb.WriteString(",\n")
		}
		writeIndent(sb, indent)
		sb.WriteByte(')')
	case serialized.Literal:
		writeLiteral(sb, string(val))
	case *serialized.ID:
		sb.WriteString(val.String())
		if val.Comment != "" {
			sb.WriteString(" /* ")
			sb.WriteString(val.Comment)
			sb.WriteString(" */")
		}
	}
}

// sortGroupChildren reorders a group's children in place by resolved
// display name (a nested group's name, a file reference's path), ties
// broken by the order the builder originally produced them in. This is
// the output ordering a group's children always carry, not something
// left for a caller to do.
func sortGroupChildren(val *serialized.Object) {
	children, err := val.GetArray("children", false)
	if err != nil || children.Len() < 2 || val.Doc == nil {
		return
	}

	type entry struct {
		name string
		item serialized.Value
	}
	entries := make([]entry, len(children.Items))
	for i, item := range children.Items {
		entries[i] = entry{childDisplayName(val.Doc, item), item}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for i, e := range entries {
		children.Items[i] = e.item
	}
}

// childDisplayName resolves v (expected to be a reference id) to the
// name a group sorts its children by: a group or variant group sorts by
// its own DisplayName, a file reference sorts by its path, anything
// else falls back to the id's comment.
func childDisplayName(doc serialized.Document, v serialized.Value) string {
	id, ok := v.(*serialized.ID)
	if !ok {
		return ""
	}
	obj, ok := doc.Lookup(*id)
	if !ok {
		return id.Comment
	}
	switch obj.ISA {
	case KindGroup, KindVariantGroup:
		return AsGroup(obj).DisplayName()
	case KindFileReference:
		fileRef := AsFileReference(obj)
		if p, _ := fileRef.Path(); p != "" {
			return p
		}
		if n, _ := fileRef.Name(); n != "" {
			return n
		}
		return obj.ID.Comment
	default:
		return obj.ID.Comment
	}
}

func writeMapBody(sb *strings.Builder, m *serialized.Map, indent int) {
	for _, key := range m.Keys() {
		writeIndent(sb, indent)
		sb.WriteString(key)
		if c := m.Comment(key); c != "" {
			sb.WriteString(" /* ")
			sb.WriteString(c)
			sb.WriteString(" */")
		}
		sb.WriteString(" = ")
		v, _ := m.Get(key)
		writeValue(sb, v, indent)
		sb.WriteString(";\n")
	}
}

func writeIndent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte('\t')
	}
}

// literalChars are the extra bytes, beyond ASCII alphanumerics, that a
// bare (unquoted) literal may contain.
const literalChars = "/._"

func literalRequiresQuotes(s string) bool {
	if len(s) == 0 {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || strings.IndexByte(literalChars, c) >= 0 {
			continue
		}
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func writeLiteral(sb *strings.Builder, s string) {
	if !literalRequiresQuotes(s) {
		sb.WriteString(s)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
}
