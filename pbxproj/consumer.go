package pbxproj

import (
	"fmt"

	"github.com/bitrise-tools/xcode-project-gen/serialized"
)

// frame is one level of nesting the document builder is currently
// populating: the container itself (a *serialized.Map, *serialized.Array
// or an already-reified *serialized.Object) plus enough bookkeeping to
// patch the parent's slot in place if this container turns out, once its
// "isa" key is seen, to need upgrading from a plain Map to a typed
// Object.
type frame struct {
	value      serialized.Value
	ownKey     string // the key this frame was inserted under in its Map parent, "" if parent is an array or this is the root
	ownComment string
	patch      func(serialized.Value) // replaces this frame's slot in its parent; nil for the root frame
}

// documentBuilder implements Consumer, assembling the generic value
// model while reifying "isa"-tagged maps into typed Objects as it goes,
// per spec §4.C's reification hook.
type documentBuilder struct {
	stack []frame

	attrName    string
	attrComment string

	// lastScalar is the most recently produced literal/id value, so a
	// following *_value_comment callback can attach to an *serialized.ID.
	lastScalar serialized.Value

	objects map[string]*serialized.Object // by 24-hex id, the document's arena
	root    *serialized.Object

	err error
}

func newDocumentBuilder() *documentBuilder {
	return &documentBuilder{
		objects: map[string]*serialized.Object{},
	}
}

func (b *documentBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Lookup implements serialized.Document for the objects this builder
// produces.
func (b *documentBuilder) Lookup(id serialized.ID) (*serialized.Object, bool) {
	obj, ok := b.objects[id.String()]
	return obj, ok
}

func (b *documentBuilder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

// put attaches value under the pending attribute name/comment to
// whatever the current top-of-stack container is.
func (b *documentBuilder) put(value serialized.Value) {
	t := b.top()
	if t == nil {
		b.fail(fmt.Errorf("pbxproj: value %v outside any container", value))
		return
	}
	switch c := t.value.(type) {
	case *serialized.Map:
		if err := c.Put(b.attrName, b.attrComment, value); err != nil {
			b.fail(err)
		}
	case *serialized.Object:
		if err := c.Put(b.attrName, b.attrComment, value); err != nil {
			b.fail(err)
		}
	case *serialized.Array:
		c.Add(value)
	default:
		b.fail(fmt.Errorf("pbxproj: cannot put into %T", t.value))
	}
}

func (b *documentBuilder) BeginObject() {
	newMap := serialized.NewMap()

	parent := b.top()
	f := frame{value: newMap}

	if parent == nil {
		// Root dictionary: there is no parent to patch, and its own kind
		// (Xcodeproj) is known a priori rather than discovered via isa.
	} else {
		f.ownKey = b.attrName
		f.ownComment = b.attrComment
		switch c := parent.value.(type) {
		case *serialized.Map:
			if err := c.Put(b.attrName, b.attrComment, newMap); err != nil {
				b.fail(err)
			}
			key := b.attrName
			f.patch = func(v serialized.Value) {
				if err := c.Replace(key, v); err != nil {
					b.fail(err)
				}
			}
		case *serialized.Object:
			if err := c.Put(b.attrName, b.attrComment, newMap); err != nil {
				b.fail(err)
			}
			key := b.attrName
			f.patch = func(v serialized.Value) {
				if err := c.Replace(key, v); err != nil {
					b.fail(err)
				}
			}
		case *serialized.Array:
			c.Add(newMap)
			idx := len(c.Items) - 1
			f.patch = func(v serialized.Value) {
				c.Items[idx] = v
			}
		default:
			b.fail(fmt.Errorf("pbxproj: cannot nest object inside %T", parent.value))
		}
	}

	b.stack = append(b.stack, f)
}

func (b *documentBuilder) EndObject() {
	if len(b.stack) == 0 {
		b.fail(fmt.Errorf("pbxproj: end_object with empty stack"))
		return
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if len(b.stack) == 0 {
		// This was the root dictionary. It is always the document's
		// distinguished Xcodeproj object, regardless of whether it
		// carries its own "isa" key (it never does, in practice).
		m, _ := f.value.(*serialized.Map)
		if m == nil {
			if obj, ok := f.value.(*serialized.Object); ok {
				obj.ISA = "Xcodeproj"
				b.root = obj
				return
			}
			b.fail(fmt.Errorf("pbxproj: root is not a dictionary"))
			return
		}
		obj := serialized.NewObject("Xcodeproj", serialized.ID{}, m, b)
		b.root = obj
	}
}

func (b *documentBuilder) ObjectComment(s string) {
	// A comment preceding the attribute name token itself; it is
	// provisionally recorded but superseded the moment the attribute
	// name is actually read (see ObjectAttr).
	b.attrComment = s
}

func (b *documentBuilder) ObjectAttr(s string) {
	b.attrName = s
	b.attrComment = ""
}

func (b *documentBuilder) ObjectAttrComment(s string) {
	b.attrComment = s
}

func (b *documentBuilder) ObjectValueLiteral(s string) {
	if serialized.IsIDLiteral(s) {
		id, err := serialized.ParseID(s)
		if err != nil {
			b.fail(err)
			return
		}
		v := &id
		b.lastScalar = v
		b.put(v)
		return
	}

	if b.attrName == "isa" {
		b.reify(s)
		return
	}

	lit := serialized.Literal(s)
	b.lastScalar = lit
	b.put(lit)
}

// reify is the isa hook from spec §4.C: the current top-of-stack Map is
// swapped for a concrete typed Object of the named kind, preserving the
// key order and entries already accumulated. A kind nobody registered an
// accessor type for still reifies fine: it is just an Object whose ISA
// happens not to match any of the typed wrappers in objects.go.
func (b *documentBuilder) reify(isa string) {
	t := b.top()
	if t == nil {
		b.fail(fmt.Errorf("pbxproj: isa %q outside any container", isa))
		return
	}
	m, ok := t.value.(*serialized.Map)
	if !ok {
		// Already reified (a second isa key, or nested reification) -
		// nothing further to do.
		return
	}

	var id serialized.ID
	if serialized.IsIDLiteral(t.ownKey) {
		parsed, err := serialized.ParseID(t.ownKey)
		if err != nil {
			b.fail(err)
			return
		}
		id = parsed
		id.Comment = t.ownComment
	}

	obj := serialized.NewObject(isa, id, m, b)
	t.value = obj
	if t.patch != nil {
		t.patch(obj)
	}

	if id != (serialized.ID{}) {
		b.objects[id.String()] = obj
	}
}

func (b *documentBuilder) ObjectValueComment(s string) {
	if id, ok := b.lastScalar.(*serialized.ID); ok {
		id.Comment = s
	}
}

func (b *documentBuilder) BeginArray() {
	arr := serialized.NewArray()

	parent := b.top()
	f := frame{value: arr}
	if parent == nil {
		b.fail(fmt.Errorf("pbxproj: array at document root"))
	} else {
		switch c := parent.value.(type) {
		case *serialized.Map:
			if err := c.Put(b.attrName, b.attrComment, arr); err != nil {
				b.fail(err)
			}
		case *serialized.Object:
			if err := c.Put(b.attrName, b.attrComment, arr); err != nil {
				b.fail(err)
			}
		case *serialized.Array:
			c.Add(arr)
		default:
			b.fail(fmt.Errorf("pbxproj: cannot nest array inside %T", parent.value))
		}
	}

	b.stack = append(b.stack, f)
}

func (b *documentBuilder) EndArray() {
	if len(b.stack) == 0 {
		b.fail(fmt.Errorf("pbxproj: end_array with empty stack"))
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *documentBuilder) ArrayValueLiteral(s string) {
	t := b.top()
	if t == nil {
		b.fail(fmt.Errorf("pbxproj: array value outside any container"))
		return
	}
	arr, ok := t.value.(*serialized.Array)
	if !ok {
		b.fail(fmt.Errorf("pbxproj: array value inside %T", t.value))
		return
	}
	if serialized.IsIDLiteral(s) {
		id, err := serialized.ParseID(s)
		if err != nil {
			b.fail(err)
			return
		}
		b.lastScalar = &id
		arr.Add(&id)
		return
	}
	lit := serialized.Literal(s)
	b.lastScalar = lit
	arr.Add(lit)
}

func (b *documentBuilder) ArrayValueComment(s string) {
	if id, ok := b.lastScalar.(*serialized.ID); ok {
		id.Comment = s
	}
}
