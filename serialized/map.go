package serialized

import (
	"fmt"
	"strconv"
)

// entry is one key-ordered slot of a Map: the value plus the comment
// that was attached to the key when it was written (e.g. the human label
// after an id, or the key-comment preceding an attribute name).
type entry struct {
	key     string
	comment string
	value   Value
}

// Map is an insertion-ordered, comment-carrying dictionary. Map is the
// backing store for every pbxproj dictionary node, and Object embeds one
// as the only store of its fields (typed accessors read and write it
// directly).
type Map struct {
	entries []entry
	index   map[string]int
}

func (*Map) isValue() {}

// NewMap returns an empty, ready-to-use Map.
func NewMap() *Map {
	return &Map{index: map[string]int{}}
}

// IsEmpty reports whether the map has never been initialized or has no
// entries; a nil *Map is considered empty so callers can lazily allocate.
func (m *Map) IsEmpty() bool {
	return m == nil || len(m.entries) == 0
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Comment returns the comment recorded against key, if any.
func (m *Map) Comment(key string) string {
	if m == nil {
		return ""
	}
	if i, ok := m.index[key]; ok {
		return m.entries[i].comment
	}
	return ""
}

// Put inserts key = value with the given comment, appending it to the
// key order. Put on a key that already exists is a schema violation:
// duplicate insertion would silently reorder or shadow data, so it
// returns an error rather than overwriting (use Replace for that).
func (m *Map) Put(key, comment string, value Value) error {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if _, ok := m.index[key]; ok {
		return fmt.Errorf("serialized: duplicate key %q", key)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, comment: comment, value: value})
	return nil
}

// Replace mutates the value stored at an existing key without touching
// its position in the key order or its comment. Replacing a missing key
// is a schema violation.
func (m *Map) Replace(key string, value Value) error {
	i, ok := m.index[key]
	if !ok {
		return fmt.Errorf("serialized: replace of missing key %q", key)
	}
	m.entries[i].value = value
	return nil
}

// set is the shared append-or-replace helper behind the SetX family:
// update in place when the key exists, append a comment-less entry when
// it doesn't.
func (m *Map) set(key string, value Value) {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, value: value})
}

func (m *Map) get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	if i, ok := m.index[key]; ok {
		return m.entries[i].value, true
	}
	return nil, false
}

// Get returns the raw, untyped value stored at key, for callers (the
// writer, mainly) that need to dispatch on a value's concrete tag rather
// than assert one kind in particular.
func (m *Map) Get(key string) (Value, bool) {
	return m.get(key)
}

// ErrTypeMismatch is returned by the typed getters when a key is present
// but its value does not have the requested tag.
type ErrTypeMismatch struct {
	Key  string
	Want string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("serialized: key %q is not a %s", e.Key, e.Want)
}

// GetString returns the literal stored at key, or def if key is absent.
func (m *Map) GetString(key, def string) (string, error) {
	v, ok := m.get(key)
	if !ok {
		return def, nil
	}
	lit, ok := v.(Literal)
	if !ok {
		return "", &ErrTypeMismatch{key, "literal"}
	}
	return string(lit), nil
}

// GetInteger returns the integer parsed from the literal at key, or def
// if absent. Matching the source behavior this module was distilled
// from, a type mismatch here is fatal rather than a recoverable error:
// callers that cannot tolerate a panic should check the key's presence
// and literal-ness themselves first.
func (m *Map) GetInteger(key string, def int) int {
	v, ok := m.get(key)
	if !ok {
		return def
	}
	lit, ok := v.(Literal)
	if !ok {
		panic(&ErrTypeMismatch{key, "literal"})
	}
	n, err := strconv.Atoi(string(lit))
	if err != nil {
		panic(&ErrTypeMismatch{key, "integer literal"})
	}
	return n
}

// GetBool interprets the literal at key as a pbxproj boolean: "NO" or
// "0" is false, anything else is true. Absent keys yield def.
func (m *Map) GetBool(key string, def bool) (bool, error) {
	v, ok := m.get(key)
	if !ok {
		return def, nil
	}
	lit, ok := v.(Literal)
	if !ok {
		return false, &ErrTypeMismatch{key, "literal"}
	}
	return string(lit) != "NO" && string(lit) != "0", nil
}

// GetID returns the id reference stored at key.
func (m *Map) GetID(key string) (ID, error) {
	v, ok := m.get(key)
	if !ok {
		return ID{}, nil
	}
	id, ok := v.(*ID)
	if !ok {
		return ID{}, &ErrTypeMismatch{key, "id"}
	}
	return *id, nil
}

// GetArray returns the array at key. When the key is absent and create
// is true, an empty array is both stored and returned so the caller can
// append into it directly.
func (m *Map) GetArray(key string, create bool) (*Array, error) {
	v, ok := m.get(key)
	if !ok {
		if !create {
			return NewArray(), nil
		}
		arr := NewArray()
		m.set(key, arr)
		return arr, nil
	}
	arr, ok := v.(*Array)
	if !ok {
		return nil, &ErrTypeMismatch{key, "array"}
	}
	return arr, nil
}

// GetMap returns the nested map at key, creating one in place when
// absent and create is true.
func (m *Map) GetMap(key string, create bool) (*Map, error) {
	v, ok := m.get(key)
	if !ok {
		if !create {
			return NewMap(), nil
		}
		nm := NewMap()
		m.set(key, nm)
		return nm, nil
	}
	nm, ok := v.(*Map)
	if !ok {
		return nil, &ErrTypeMismatch{key, "map"}
	}
	return nm, nil
}

// SetString sets key to a literal value, appending if new.
func (m *Map) SetString(key, val string) {
	m.set(key, Literal(val))
}

// SetInteger sets key to the decimal rendering of val, appending if new.
func (m *Map) SetInteger(key string, val int) {
	m.set(key, Literal(strconv.Itoa(val)))
}

// SetBool sets key to "YES"/"NO", appending if new.
func (m *Map) SetBool(key string, val bool) {
	if val {
		m.set(key, Literal("YES"))
	} else {
		m.set(key, Literal("NO"))
	}
}

// SetID sets key to an id reference, appending if new.
func (m *Map) SetID(key string, val ID) {
	m.set(key, &ID{Bytes: val.Bytes, Comment: val.Comment})
}

// SetArray sets key to an array, appending if new.
func (m *Map) SetArray(key string, val *Array) {
	m.set(key, val)
}

// SetMap sets key to a nested map, appending if new.
func (m *Map) SetMap(key string, val *Map) {
	m.set(key, val)
}

