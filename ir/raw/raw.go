// Package raw implements the typed object graph a PDF document is built
// from. Nodes are connected by reference, never by copy: two handles
// obtained from the same constructor alias the same node, and a mutation
// through one is visible through the other.
//
// A Dictionary or Stream may be marked unique, which instructs the writer
// to give it exactly one indirect identity of its own. An Array may be
// marked inline, which instructs the writer to embed it verbatim in its
// parent. Streams are always unique.
package raw

import "fmt"

// ObjectRef identifies an indirect object after the writer has assigned
// object numbers. Graph construction never deals in refs; they exist only
// at serialization time.
type ObjectRef struct {
	Num int
	Gen int
}

func (r ObjectRef) String() string { return fmt.Sprintf("%d %d R", r.Num, r.Gen) }

// Object is the base interface for all graph nodes.
type Object interface {
	Type() string
}

// Name is an interned symbolic key. Value-equal, immutable.
type Name interface {
	Object
	Value() string
}

// String is a byte/text value, serialized literal or hex.
type String interface {
	Object
	Value() []byte
	IsHex() bool
}

// Number is an integer or real numeric value.
type Number interface {
	Object
	Int() int64
	Float() float64
	IsInteger() bool
}

// Boolean is a true/false value.
type Boolean interface {
	Object
	Value() bool
}

// Array is an ordered sequence of nodes.
type Array interface {
	Object
	Get(index int) (Object, bool)
	Set(index int, obj Object) bool
	Len() int
	Append(obj Object)
	MarkInline()
	IsInline() bool
}

// Dictionary maps name keys to nodes. Insertion order is preserved so
// serialization is deterministic.
type Dictionary interface {
	Object
	Get(key string) (Object, bool)
	Set(key string, value Object)
	Has(key string) bool
	Keys() []string
	Len() int
	MarkUnique()
	IsUnique() bool
}

// Stream is a Dictionary plus an associated byte payload with a declared
// filter and length. Always unique.
type Stream interface {
	Object
	Dictionary() Dictionary
	DecodedData() []byte
	EncodedData() []byte
}

// Reference is an indirect reference emitted by the writer.
type Reference interface {
	Object
	Ref() ObjectRef
}

// Null is the null object.
type Null interface{ Object }
