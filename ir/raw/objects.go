package raw

// Concrete node implementations.

// NameObj is an interned symbolic key.
type NameObj struct{ Val string }

func (n NameObj) Type() string  { return "name" }
func (n NameObj) Value() string { return n.Val }

// NumberObj holds either an integer or a real.
type NumberObj struct {
	I     int64
	F     float64
	IsInt bool
}

func (n NumberObj) Type() string { return "number" }
func (n NumberObj) Int() int64 {
	if n.IsInt {
		return n.I
	}
	return int64(n.F)
}
func (n NumberObj) Float() float64 {
	if n.IsInt {
		return float64(n.I)
	}
	return n.F
}
func (n NumberObj) IsInteger() bool { return n.IsInt }

// BoolObj is a boolean node.
type BoolObj struct{ V bool }

func (b BoolObj) Type() string { return "boolean" }
func (b BoolObj) Value() bool  { return b.V }

// NullObj is the null node.
type NullObj struct{}

func (NullObj) Type() string { return "null" }

// StringObj is a string node, literal by default. The payload is held as
// a string so interface values wrapping a StringObj stay comparable and
// hashable.
type StringObj struct {
	Val string
	Hex bool
}

func (s StringObj) Type() string  { return "string" }
func (s StringObj) Value() []byte { return []byte(s.Val) }
func (s StringObj) IsHex() bool   { return s.Hex }

// ArrayObj is a mutable ordered sequence. Always constructed via NewArray
// or InlineArray so two handles to the same array alias the same backing
// slice header.
type ArrayObj struct {
	items  []Object
	inline bool
}

func (a *ArrayObj) Type() string { return "array" }
func (a *ArrayObj) Get(i int) (Object, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}
func (a *ArrayObj) Set(i int, o Object) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i] = o
	return true
}
func (a *ArrayObj) Len() int        { return len(a.items) }
func (a *ArrayObj) Append(o Object) { a.items = append(a.items, o) }
func (a *ArrayObj) MarkInline()     { a.inline = true }
func (a *ArrayObj) IsInline() bool  { return a.inline }

// DictObj is a mutable, insertion-ordered dictionary.
type DictObj struct {
	kv     map[string]Object
	order  []string
	unique bool
}

func (d *DictObj) Type() string { return "dict" }
func (d *DictObj) Get(key string) (Object, bool) {
	o, ok := d.kv[key]
	return o, ok
}
func (d *DictObj) Set(key string, value Object) {
	if d.kv == nil {
		d.kv = make(map[string]Object)
	}
	if _, exists := d.kv[key]; !exists {
		d.order = append(d.order, key)
	}
	d.kv[key] = value
}
func (d *DictObj) Has(key string) bool {
	_, ok := d.kv[key]
	return ok
}
func (d *DictObj) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}
func (d *DictObj) Len() int       { return len(d.kv) }
func (d *DictObj) MarkUnique()    { d.unique = true }
func (d *DictObj) IsUnique() bool { return d.unique }

// GetDict returns the value under key when it is a dictionary.
func (d *DictObj) GetDict(key string) (Dictionary, bool) {
	o, ok := d.kv[key]
	if !ok {
		return nil, false
	}
	dict, ok := o.(Dictionary)
	return dict, ok
}

// GetArray returns the value under key when it is an array.
func (d *DictObj) GetArray(key string) (Array, bool) {
	o, ok := d.kv[key]
	if !ok {
		return nil, false
	}
	arr, ok := o.(Array)
	return arr, ok
}

// StreamObj couples a dictionary with a byte payload. The decoded payload
// and its encoded form are both retained; SetData records the filter name
// and the exact encoded byte count in the dictionary.
type StreamObj struct {
	dict    *DictObj
	decoded []byte
	encoded []byte
}

func (s *StreamObj) Type() string           { return "stream" }
func (s *StreamObj) Dictionary() Dictionary { return s.dict }
func (s *StreamObj) DecodedData() []byte    { return s.decoded }
func (s *StreamObj) EncodedData() []byte    { return s.encoded }

// SetData installs the payload pair and declares Filter and Length. Length
// is the exact encoded byte count; it must be re-declared whenever the
// payload changes.
func (s *StreamObj) SetData(decoded, encoded []byte, filter string) {
	s.decoded = decoded
	s.encoded = encoded
	s.dict.Set("Filter", NameLiteral(filter))
	s.dict.Set("Length", NumberInt(int64(len(encoded))))
}

// Streams always serialize as indirect objects.
func (s *StreamObj) MarkUnique()    {}
func (s *StreamObj) IsUnique() bool { return true }

// Stream dictionary passthrough.
func (s *StreamObj) Get(key string) (Object, bool) { return s.dict.Get(key) }
func (s *StreamObj) Set(key string, value Object)  { s.dict.Set(key, value) }
func (s *StreamObj) Has(key string) bool           { return s.dict.Has(key) }

// RefObj is an indirect reference.
type RefObj struct{ R ObjectRef }

func (r RefObj) Type() string   { return "ref" }
func (r RefObj) Ref() ObjectRef { return r.R }

// Constructors.

func NameLiteral(v string) NameObj       { return NameObj{Val: v} }
func NumberInt(i int64) NumberObj        { return NumberObj{I: i, IsInt: true} }
func NumberFloat(f float64) NumberObj    { return NumberObj{F: f} }
func Bool(v bool) BoolObj                { return BoolObj{V: v} }
func Str(b []byte) StringObj             { return StringObj{Val: string(b)} }
func StrLiteral(s string) StringObj      { return StringObj{Val: s} }
func HexStr(b []byte) StringObj          { return StringObj{Val: string(b), Hex: true} }
func NewArray(items ...Object) *ArrayObj { return &ArrayObj{items: items} }
func Dict() *DictObj                     { return &DictObj{kv: make(map[string]Object)} }
func Ref(num, gen int) RefObj            { return RefObj{R: ObjectRef{Num: num, Gen: gen}} }

// InlineArray builds an array flagged for verbatim embedding, used for
// small fixed-size tuples like Rect and BBox.
func InlineArray(items ...Object) *ArrayObj {
	a := NewArray(items...)
	a.MarkInline()
	return a
}

// UniqueDict builds a dictionary flagged for a fresh indirect identity.
func UniqueDict() *DictObj {
	d := Dict()
	d.MarkUnique()
	return d
}

// NewStream builds an empty unique stream. Payload is installed later via
// SetData.
func NewStream() *StreamObj {
	return &StreamObj{dict: Dict()}
}
