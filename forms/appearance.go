package forms

import (
	"context"

	"github.com/vellumpdf/vellum/filters"
	"github.com/vellumpdf/vellum/ir/raw"
)

// The marked-content payload of every field appearance: an empty /Tx
// region. The field's text is rendered by the consuming viewer, not
// pre-drawn here.
const appearancePayload = "/Tx BMC EMC"

// buildNormalAppearance synthesizes the normal-appearance form XObject for
// a field. The visible area is [0 0 width visibleHeight]; the payload is
// Flate-compressed and the declared Length is the exact compressed byte
// count, so decoding the stream always reproduces the payload byte for
// byte.
func buildNormalAppearance(width, visibleHeight float64, res raw.Dictionary) (*raw.StreamObj, error) {
	s := raw.NewStream()
	s.Set("Type", raw.NameLiteral("XObject"))
	s.Set("Subtype", raw.NameLiteral("Form"))
	s.Set("BBox", raw.InlineArray(
		raw.NumberFloat(0),
		raw.NumberFloat(0),
		raw.NumberFloat(width),
		raw.NumberFloat(visibleHeight),
	))
	s.Set("Resources", res)

	encoded, err := filters.NewFlateCodec().Encode(context.Background(), []byte(appearancePayload))
	if err != nil {
		return nil, err
	}
	s.SetData([]byte(appearancePayload), encoded, "FlateDecode")
	return s, nil
}
