package writer

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/vellumpdf/vellum/ir/raw"
)

// allocator walks the graph assigning one indirect identity to every
// unique node. Identity is node identity, not structural equality: a
// shared node is visited once and referenced from every parent.
type allocator struct {
	refs   map[raw.Object]raw.ObjectRef
	order  []raw.Object
	next   int
	seen   map[raw.Object]bool
}

func newAllocator() *allocator {
	return &allocator{
		refs: make(map[raw.Object]raw.ObjectRef),
		seen: make(map[raw.Object]bool),
		next: 1,
	}
}

func (a *allocator) nextRef() raw.ObjectRef {
	ref := raw.ObjectRef{Num: a.next}
	a.next++
	return ref
}

// walk traverses containers depth-first. Cycles are broken by the seen
// set; back-references through unique nodes become plain references.
func (a *allocator) walk(obj raw.Object) {
	switch v := obj.(type) {
	case *raw.DictObj:
		if a.seen[obj] {
			return
		}
		a.seen[obj] = true
		if v.IsUnique() {
			a.alloc(v)
		}
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			a.walk(child)
		}
	case *raw.StreamObj:
		if a.seen[obj] {
			return
		}
		a.seen[obj] = true
		a.alloc(v)
		dict := v.Dictionary().(*raw.DictObj)
		for _, k := range dict.Keys() {
			child, _ := dict.Get(k)
			a.walk(child)
		}
	case *raw.ArrayObj:
		if a.seen[obj] {
			return
		}
		a.seen[obj] = true
		for i := 0; i < v.Len(); i++ {
			child, _ := v.Get(i)
			a.walk(child)
		}
	}
}

func (a *allocator) alloc(obj raw.Object) {
	if _, ok := a.refs[obj]; ok {
		return
	}
	a.refs[obj] = a.nextRef()
	a.order = append(a.order, obj)
}

// serializeValue renders a node. Children holding an indirect identity
// render as references unless top is set, which renders the node's own
// body (used when emitting the object itself).
func (a *allocator) serializeValue(obj raw.Object, top bool) []byte {
	if !top {
		if ref, ok := a.refs[obj]; ok {
			return []byte(ref.String())
		}
	}

	switch v := obj.(type) {
	case raw.Name:
		return []byte("/" + v.Value())
	case raw.Number:
		if v.IsInteger() {
			return []byte(fmt.Sprintf("%d", v.Int()))
		}
		return []byte(fmt.Sprintf("%f", v.Float()))
	case raw.Boolean:
		if v.Value() {
			return []byte("true")
		}
		return []byte("false")
	case raw.String:
		if v.IsHex() {
			return []byte("<" + hex.EncodeToString(v.Value()) + ">")
		}
		return []byte("(" + escapeString(v.Value()) + ")")
	case raw.Reference:
		return []byte(v.Ref().String())
	case *raw.ArrayObj:
		var b bytes.Buffer
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			child, _ := v.Get(i)
			b.Write(a.serializeValue(child, false))
		}
		b.WriteByte(']')
		return b.Bytes()
	case *raw.DictObj:
		return a.serializeDict(v)
	case *raw.StreamObj:
		var b bytes.Buffer
		b.Write(a.serializeDict(v.Dictionary().(*raw.DictObj)))
		b.WriteString("\nstream\n")
		b.Write(v.EncodedData())
		b.WriteString("\nendstream")
		return b.Bytes()
	default:
		return []byte("null")
	}
}

func (a *allocator) serializeDict(d *raw.DictObj) []byte {
	var b bytes.Buffer
	b.WriteString("<<")
	for i, k := range d.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("/" + k + " ")
		child, _ := d.Get(k)
		b.Write(a.serializeValue(child, false))
	}
	b.WriteString(">>")
	return b.Bytes()
}

func escapeString(in []byte) string {
	var b bytes.Buffer
	for _, c := range in {
		switch c {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
