// Package resources registers named resources in resource dictionaries.
// Registration is idempotent: asking for a font that is already present
// returns the existing name instead of growing the dictionary.
package resources

import (
	"fmt"

	"github.com/vellumpdf/vellum/fonts"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
)

type Category string

const CategoryFont Category = "Font"

// EnsureFont returns the resource name under which font is registered in
// the page's font dictionary, registering it first when absent. The font
// dictionary is created lazily; there are no error paths.
func EnsureFont(page *semantic.Page, font fonts.StandardType1) string {
	return ensureFontIn(page.FontResources(), font)
}

// EnsureFontInResources is EnsureFont against an arbitrary resources
// dictionary, such as a document-wide default. The Font sub-dictionary is
// created lazily.
func EnsureFontInResources(res *raw.DictObj, font fonts.StandardType1) string {
	fd, ok := res.GetDict(string(CategoryFont))
	if !ok {
		d := raw.Dict()
		res.Set(string(CategoryFont), d)
		fd = d
	}
	return ensureFontIn(fd.(*raw.DictObj), font)
}

func ensureFontIn(fontDict *raw.DictObj, font fonts.StandardType1) string {
	for _, key := range fontDict.Keys() {
		entry, ok := fontDict.GetDict(key)
		if !ok {
			continue
		}
		if font.Matches(entry) {
			return key
		}
	}

	name := nextName(fontDict, "F")
	fontDict.Set(name, font.Dict())
	return name
}

// nextName allocates the first unused name with the given prefix,
// scanning F1, F2, ... deterministically.
func nextName(dict raw.Dictionary, prefix string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		if !dict.Has(name) {
			return name
		}
	}
}
