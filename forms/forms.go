// Package forms synthesizes interactive form field widgets and wires them
// into the document graph. A field is constructed detached; on the first
// layout pass against a page that belongs to a rooted document, its widget
// dictionary, appearance stream and resource dictionary are created and
// cross-linked into the page's annotation array and the catalog's AcroForm
// registry. That transition happens at most once per field. Every later
// layout pass only rewrites geometry, in place, on the same nodes.
package forms

import (
	"errors"
	"fmt"

	"github.com/vellumpdf/vellum/colors"
	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/fonts"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
	"github.com/vellumpdf/vellum/observability"
	"github.com/vellumpdf/vellum/resources"
)

var (
	ErrNegativeFontSize = errors.New("forms: font size must be non-negative")
	ErrInvalidLineCount = errors.New("forms: line count must be positive")
)

// Edges holds one value per side, top first, clockwise.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// BorderSides toggles each border edge independently.
type BorderSides struct {
	Top, Right, Bottom, Left bool
}

type config struct {
	fieldName    string
	value        string
	defaultValue string
	font         fonts.StandardType1
	fontSize     float64
	fontColor    colors.Color
	borderColor  colors.Color
	borders      BorderSides
	margin       Edges
	padding      Edges

	formatScript   string
	validateScript string

	logger observability.Logger
}

func defaultConfig() config {
	return config{
		font:        fonts.Helvetica(),
		fontSize:    12,
		fontColor:   colors.Black,
		borderColor: colors.Gray,
		borders:     BorderSides{Top: true, Right: true, Bottom: true, Left: true},
		logger:      observability.NopLogger{},
	}
}

func (c *config) validate() error {
	if c.fontSize < 0 {
		return ErrNegativeFontSize
	}
	return nil
}

// Option configures a field at construction time.
type Option func(*config)

func WithFieldName(name string) Option      { return func(c *config) { c.fieldName = name } }
func WithValue(v string) Option             { return func(c *config) { c.value = v } }
func WithDefaultValue(v string) Option      { return func(c *config) { c.defaultValue = v } }
func WithFont(f fonts.StandardType1) Option { return func(c *config) { c.font = f } }
func WithFontSize(size float64) Option      { return func(c *config) { c.fontSize = size } }
func WithFontColor(col colors.Color) Option { return func(c *config) { c.fontColor = col } }
func WithBorderColor(col colors.Color) Option {
	return func(c *config) { c.borderColor = col }
}
func WithBorders(sides BorderSides) Option { return func(c *config) { c.borders = sides } }
func WithMargin(e Edges) Option            { return func(c *config) { c.margin = e } }
func WithPadding(e Edges) Option           { return func(c *config) { c.padding = e } }

// WithFormatScript installs a JavaScript format action on the widget.
func WithFormatScript(js string) Option { return func(c *config) { c.formatScript = js } }

// WithValidateScript installs a JavaScript validate action on the widget.
func WithValidateScript(js string) Option { return func(c *config) { c.validateScript = js } }

func WithLogger(l observability.Logger) Option { return func(c *config) { c.logger = l } }

// annotation flag: rendered and printable
const flagPrint = 4

// multiline field flag (Ff bit 13)
const FlagMultiline = 4096

// synthesize builds the widget dictionary and links it into the page and
// catalog. It returns nil without side effects when the page is not part
// of a rooted document. visibleHeight is the appearance BBox height,
// which is the raw glyph-area height rather than the leaded line box.
func (c *config) synthesize(page *semantic.Page, box coords.Rectangle, visibleHeight float64, fieldFlags int64) (*raw.DictObj, error) {
	catalog := page.Root()
	if catalog == nil {
		c.logger.Debug("widget synthesis deferred: page has no rooted document")
		return nil, nil
	}

	// The first widget's resource dictionary becomes the document-wide
	// default (AcroForm DR); later widgets reuse that same node, so every
	// appearance stream in the document shares one resources instance.
	// The first DR's Font entry aliases the page's font dictionary. The
	// DA name must resolve through the stream's own resources, so fonts
	// are always registered against the DR's font dictionary rather than
	// the current page's.
	var widgetResources *raw.DictObj
	if acro, ok := catalog.GetDict("AcroForm"); ok {
		if dr, ok := acro.(*raw.DictObj).GetDict("DR"); ok {
			widgetResources = dr.(*raw.DictObj)
		}
	}
	if widgetResources == nil {
		widgetResources = raw.UniqueDict()
		widgetResources.Set("Font", page.FontResources())
	}
	fontName := resources.EnsureFontInResources(widgetResources, c.font)

	appearance, err := buildNormalAppearance(box.W, visibleHeight, widgetResources)
	if err != nil {
		return nil, err
	}

	apDict := raw.UniqueDict()
	apDict.Set("N", appearance)

	name := c.fieldName
	if name == "" {
		name = autoFieldName(catalog)
	}

	r, g, b := c.fontColor.ToRGB()

	w := raw.UniqueDict()
	w.Set("Type", raw.NameLiteral("Annot"))
	w.Set("Subtype", raw.NameLiteral("Widget"))
	w.Set("F", raw.NumberInt(flagPrint))
	w.Set("Rect", raw.InlineArray(
		raw.NumberFloat(box.X),
		raw.NumberFloat(box.Y+box.H-visibleHeight),
		raw.NumberFloat(box.X+box.W),
		raw.NumberFloat(box.Y+box.H),
	))
	w.Set("FT", raw.NameLiteral("Tx"))
	if fieldFlags != 0 {
		w.Set("Ff", raw.NumberInt(fieldFlags))
	}
	w.Set("P", page.Dict())
	w.Set("T", raw.StrLiteral(name))
	w.Set("V", raw.StrLiteral(c.value))
	w.Set("DV", raw.StrLiteral(c.defaultValue))
	w.Set("DR", widgetResources)
	w.Set("DA", raw.StrLiteral(fmt.Sprintf("%f %f %f rg /%s %f Tf", r, g, b, fontName, c.fontSize)))
	w.Set("AP", apDict)

	if aa := c.additionalActions(); aa != nil {
		w.Set("AA", aa)
	}

	page.Annots().Append(w)

	acro, ok := catalog.GetDict("AcroForm")
	if !ok {
		a := raw.Dict()
		a.Set("Fields", raw.NewArray())
		a.Set("DR", widgetResources)
		a.Set("NeedAppearances", raw.Bool(true))
		catalog.Set("AcroForm", a)
		acro = a
	}
	fields, _ := acro.(*raw.DictObj).GetArray("Fields")
	fields.Append(w)

	c.logger.Debug("widget synthesized",
		observability.String("field", name),
		observability.String("font", fontName),
		observability.Float64("width", box.W),
	)
	return w, nil
}

func (c *config) additionalActions() *raw.DictObj {
	if c.formatScript == "" && c.validateScript == "" {
		return nil
	}
	aa := raw.Dict()
	if c.formatScript != "" {
		aa.Set("F", javascriptAction(c.formatScript))
	}
	if c.validateScript != "" {
		aa.Set("V", javascriptAction(c.validateScript))
	}
	return aa
}

func javascriptAction(js string) *raw.DictObj {
	a := raw.Dict()
	a.Set("Type", raw.NameLiteral("Action"))
	a.Set("S", raw.NameLiteral("JavaScript"))
	a.Set("JS", raw.StrLiteral(js))
	return a
}

// autoFieldName generates a document-unique field name. Names are drawn
// from a counter seeded by the current registry size and checked against
// every T already present, so repeated calls never collide.
func autoFieldName(catalog *raw.DictObj) string {
	taken := make(map[string]bool)
	seed := 0
	if acro, ok := catalog.GetDict("AcroForm"); ok {
		if fields, ok := acro.(*raw.DictObj).GetArray("Fields"); ok {
			seed = fields.Len()
			for i := 0; i < fields.Len(); i++ {
				entry, _ := fields.Get(i)
				dict, ok := entry.(raw.Dictionary)
				if !ok {
					continue
				}
				if t, ok := dict.Get("T"); ok {
					if s, ok := t.(raw.String); ok {
						taken[string(s.Value())] = true
					}
				}
			}
		}
	}
	for i := seed; ; i++ {
		name := fmt.Sprintf("field-%06d", i)
		if !taken[name] {
			return name
		}
	}
}

// updateWidgetGeometry rewrites only the geometry entries of an existing
// widget: the appearance BBox width and height and the four Rect corners.
// It never reallocates a node.
func updateWidgetGeometry(w *raw.DictObj, box coords.Rectangle, visibleHeight float64) {
	if ap, ok := w.GetDict("AP"); ok {
		if n, ok := ap.Get("N"); ok {
			if stream, ok := n.(raw.Stream); ok {
				if bbox, ok := stream.Dictionary().(*raw.DictObj).GetArray("BBox"); ok {
					bbox.Set(2, raw.NumberFloat(box.W))
					bbox.Set(3, raw.NumberFloat(visibleHeight))
				}
			}
		}
	}
	if rect, ok := w.GetArray("Rect"); ok {
		corners := box.Corners()
		for i, v := range corners {
			rect.Set(i, raw.NumberFloat(v))
		}
	}
}
