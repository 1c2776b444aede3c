package semantic

import (
	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/ir/raw"
)

// Page wraps a page dictionary. A page starts detached; AddPage on a
// Document attaches it. The doc pointer is a back-reference used for
// lookup only.
type Page struct {
	dict *raw.DictObj
	doc  *Document
}

// NewPage builds a detached US-Letter page.
func NewPage() *Page {
	return NewPageWithSize(coords.Rectangle{W: 612, H: 792})
}

// NewPageWithSize builds a detached page with the given media box.
func NewPageWithSize(mediaBox coords.Rectangle) *Page {
	d := raw.UniqueDict()
	d.Set("Type", raw.NameLiteral("Page"))
	c := mediaBox.Corners()
	d.Set("MediaBox", raw.InlineArray(
		raw.NumberFloat(c[0]), raw.NumberFloat(c[1]),
		raw.NumberFloat(c[2]), raw.NumberFloat(c[3]),
	))
	return &Page{dict: d}
}

// Dict exposes the underlying page dictionary node.
func (p *Page) Dict() *raw.DictObj { return p.dict }

// Root returns the owning document's catalog, or nil when the page is
// detached or the document lacks a root structure.
func (p *Page) Root() *raw.DictObj {
	if p.doc == nil {
		return nil
	}
	return p.doc.Catalog()
}

// Document returns the owning document, nil when detached.
func (p *Page) Document() *Document { return p.doc }

// Resources returns the page's resource dictionary, creating it on first
// use. The same node instance is returned on every call.
func (p *Page) Resources() *raw.DictObj {
	if res, ok := p.dict.GetDict("Resources"); ok {
		return res.(*raw.DictObj)
	}
	res := raw.Dict()
	p.dict.Set("Resources", res)
	return res
}

// FontResources returns the Font sub-dictionary of the page resources,
// creating it on first use.
func (p *Page) FontResources() *raw.DictObj {
	res := p.Resources()
	if fonts, ok := res.GetDict("Font"); ok {
		return fonts.(*raw.DictObj)
	}
	fonts := raw.Dict()
	res.Set("Font", fonts)
	return fonts
}

// Annots returns the page's annotation array, creating it on first use.
// Callers append only; entries are never deduplicated or reordered.
func (p *Page) Annots() raw.Array {
	if arr, ok := p.dict.GetArray("Annots"); ok {
		return arr
	}
	arr := raw.NewArray()
	p.dict.Set("Annots", arr)
	return arr
}

// HasAnnots reports whether the annotation array exists yet.
func (p *Page) HasAnnots() bool { return p.dict.Has("Annots") }
