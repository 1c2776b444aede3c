// Package fonts provides descriptors for the standard 14 Type 1 fonts.
// These are descriptor-only: no metrics, no embedding. A descriptor
// renders to a font dictionary node and knows when an existing node
// describes the same font.
package fonts

import "github.com/vellumpdf/vellum/ir/raw"

// StandardType1 describes one of the standard 14 fonts by base name.
type StandardType1 struct {
	BaseFont string
}

func Helvetica() StandardType1 { return StandardType1{BaseFont: "Helvetica"} }
func Courier() StandardType1   { return StandardType1{BaseFont: "Courier"} }
func TimesRoman() StandardType1 {
	return StandardType1{BaseFont: "Times-Roman"}
}

// Dict builds a fresh font dictionary node for this descriptor.
func (f StandardType1) Dict() *raw.DictObj {
	d := raw.Dict()
	d.Set("Type", raw.NameLiteral("Font"))
	d.Set("Subtype", raw.NameLiteral("Type1"))
	d.Set("BaseFont", raw.NameLiteral(f.BaseFont))
	d.Set("Encoding", raw.NameLiteral("WinAnsiEncoding"))
	return d
}

// Matches reports whether an existing font dictionary describes the same
// font as this descriptor.
func (f StandardType1) Matches(dict raw.Dictionary) bool {
	sub, ok := dict.Get("Subtype")
	if !ok {
		return false
	}
	name, ok := sub.(raw.Name)
	if !ok || name.Value() != "Type1" {
		return false
	}
	base, ok := dict.Get("BaseFont")
	if !ok {
		return false
	}
	baseName, ok := base.(raw.Name)
	return ok && baseName.Value() == f.BaseFont
}
