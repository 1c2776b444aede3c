// Package semantic layers document structure over the raw object graph:
// a Document owns a cross-reference trailer whose Root is the catalog, and
// Pages hang off the catalog's page tree. Pages constructed detached can
// be attached later; structural helpers (resources, annotations) create
// their backing nodes lazily on first use.
package semantic

import (
	"github.com/vellumpdf/vellum/ir/raw"
)

// Document is the root container. Its trailer dictionary carries the Root
// entry; a page reached from a document whose trailer lacks Root is not
// attachable.
type Document struct {
	trailer *raw.DictObj
	pages   []*Page
}

// NewDocument builds a document with an initialized trailer, catalog and
// empty page tree.
func NewDocument() *Document {
	catalog := raw.UniqueDict()
	catalog.Set("Type", raw.NameLiteral("Catalog"))

	pageTree := raw.UniqueDict()
	pageTree.Set("Type", raw.NameLiteral("Pages"))
	pageTree.Set("Kids", raw.NewArray())
	pageTree.Set("Count", raw.NumberInt(0))
	catalog.Set("Pages", pageTree)

	trailer := raw.Dict()
	trailer.Set("Root", catalog)
	return &Document{trailer: trailer}
}

// Trailer exposes the cross-reference trailer dictionary.
func (d *Document) Trailer() *raw.DictObj { return d.trailer }

// Catalog returns the trailer's Root dictionary, or nil when the document
// has no root structure.
func (d *Document) Catalog() *raw.DictObj {
	if d == nil {
		return nil
	}
	root, ok := d.trailer.GetDict("Root")
	if !ok {
		return nil
	}
	return root.(*raw.DictObj)
}

// Pages returns the attached pages in order.
func (d *Document) Pages() []*Page { return d.pages }

// AddPage attaches a page to this document, wiring it into the page tree.
// Attaching an already-attached page is a no-op.
func (d *Document) AddPage(p *Page) {
	if p.doc == d {
		return
	}
	p.doc = d
	d.pages = append(d.pages, p)

	catalog := d.Catalog()
	if catalog == nil {
		return
	}
	tree, ok := catalog.GetDict("Pages")
	if !ok {
		return
	}
	treeDict := tree.(*raw.DictObj)
	kids, ok := treeDict.GetArray("Kids")
	if !ok {
		arr := raw.NewArray()
		treeDict.Set("Kids", arr)
		kids = arr
	}
	kids.Append(p.dict)
	p.dict.Set("Parent", treeDict)
	treeDict.Set("Count", raw.NumberInt(int64(kids.Len())))
}
