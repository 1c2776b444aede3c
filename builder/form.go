package builder

import (
	"github.com/vellumpdf/vellum/ir/raw"
)

// FormBuilder edits field values after layout.
type FormBuilder interface {
	// SetText sets the value of a text field by name. Unknown names are
	// ignored.
	SetText(name, value string) FormBuilder
	// Finish returns to the PDFBuilder.
	Finish() PDFBuilder
}

type formBuilderImpl struct {
	parent *builderImpl
}

func (b *builderImpl) Form() FormBuilder {
	return &formBuilderImpl{parent: b}
}

func (fb *formBuilderImpl) SetText(name, value string) FormBuilder {
	catalog := fb.parent.doc.Catalog()
	if catalog == nil {
		return fb
	}
	acro, ok := catalog.GetDict("AcroForm")
	if !ok {
		return fb
	}
	fields, ok := acro.(*raw.DictObj).GetArray("Fields")
	if !ok {
		return fb
	}
	for i := 0; i < fields.Len(); i++ {
		entry, _ := fields.Get(i)
		dict, ok := entry.(*raw.DictObj)
		if !ok {
			continue
		}
		t, ok := dict.Get("T")
		if !ok {
			continue
		}
		if s, ok := t.(raw.String); ok && string(s.Value()) == name {
			dict.Set("V", raw.StrLiteral(value))
			return fb
		}
	}
	return fb
}

func (fb *formBuilderImpl) Finish() PDFBuilder { return fb.parent }
