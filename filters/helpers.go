package filters

import "github.com/vellumpdf/vellum/ir/raw"

// ExtractFilters reads the Filter and DecodeParms entries from a stream
// dictionary, normalizing single values and arrays to slices.
func ExtractFilters(dict raw.Dictionary) ([]string, []raw.Dictionary) {
	var names []string
	var params []raw.Dictionary

	filterObj, ok := dict.Get("Filter")
	if !ok {
		return names, params
	}

	switch f := filterObj.(type) {
	case raw.Name:
		names = append(names, f.Value())
	case raw.Array:
		for i := 0; i < f.Len(); i++ {
			item, _ := f.Get(i)
			if n, ok := item.(raw.Name); ok {
				names = append(names, n.Value())
			}
		}
	}

	if len(names) > 0 {
		if pObj, ok := dict.Get("DecodeParms"); ok {
			switch p := pObj.(type) {
			case raw.Dictionary:
				params = append(params, p)
			case raw.Array:
				for i := 0; i < p.Len(); i++ {
					item, _ := p.Get(i)
					if d, ok := item.(raw.Dictionary); ok {
						params = append(params, d)
					}
				}
			}
		}
	}

	return names, params
}
