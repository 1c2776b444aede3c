package forms

import (
	"context"
	"strings"
	"testing"

	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/filters"
	"github.com/vellumpdf/vellum/fonts"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
)

func attachedPage(t *testing.T) (*semantic.Document, *semantic.Page) {
	t.Helper()
	doc := semantic.NewDocument()
	page := semantic.NewPage()
	doc.AddPage(page)
	return doc, page
}

func mustField(t *testing.T, opts ...Option) *TextField {
	t.Helper()
	f, err := NewTextField(opts...)
	if err != nil {
		t.Fatalf("NewTextField: %v", err)
	}
	return f
}

var testBox = coords.Rectangle{X: 0, Y: 35.6, W: 200, H: 14.4}

func TestNegativeFontSizeRejectedAtConstruction(t *testing.T) {
	if _, err := NewTextField(WithFontSize(-1)); err != ErrNegativeFontSize {
		t.Fatalf("err = %v, want ErrNegativeFontSize", err)
	}
	// zero is allowed
	if _, err := NewTextField(WithFontSize(0)); err != nil {
		t.Fatalf("font size 0 rejected: %v", err)
	}
}

func TestAttachIdempotent(t *testing.T) {
	doc, page := attachedPage(t)
	f := mustField(t)

	if err := f.Attach(page, testBox); err != nil {
		t.Fatalf("first Attach: %v", err)
	}
	first := f.Widget()
	if first == nil {
		t.Fatal("widget not synthesized on rooted page")
	}
	if err := f.Attach(page, testBox); err != nil {
		t.Fatalf("second Attach: %v", err)
	}
	if f.Widget() != first {
		t.Fatal("second Attach replaced the widget node")
	}

	if n := page.Annots().Len(); n != 1 {
		t.Errorf("Annots has %d entries, want 1", n)
	}
	acro, _ := doc.Catalog().GetDict("AcroForm")
	fields, _ := acro.(*raw.DictObj).GetArray("Fields")
	if fields.Len() != 1 {
		t.Errorf("Fields has %d entries, want 1", fields.Len())
	}
	entry, _ := fields.Get(0)
	if entry != raw.Object(first) {
		t.Error("registry entry must alias the widget node")
	}
}

func TestDetachedPageDefersSynthesis(t *testing.T) {
	page := semantic.NewPage()
	f := mustField(t)

	if err := f.Attach(page, testBox); err != nil {
		t.Fatalf("Attach on detached page: %v", err)
	}
	if f.Synthesized() {
		t.Fatal("widget created on detached page")
	}
	if page.Dict().Has("Annots") {
		t.Fatal("detached attach must create nothing")
	}

	// UpdateGeometry before synthesis is a no-op
	f.UpdateGeometry(testBox)

	doc := semantic.NewDocument()
	doc.AddPage(page)
	if err := f.Attach(page, testBox); err != nil {
		t.Fatalf("Attach after attach-to-document: %v", err)
	}
	if !f.Synthesized() {
		t.Fatal("widget not created once page was rooted")
	}
	if n := page.Annots().Len(); n != 1 {
		t.Errorf("Annots has %d entries, want 1", n)
	}
}

func getStream(t *testing.T, w *raw.DictObj) *raw.StreamObj {
	t.Helper()
	ap, ok := w.GetDict("AP")
	if !ok {
		t.Fatal("widget has no AP")
	}
	n, ok := ap.Get("N")
	if !ok {
		t.Fatal("AP has no N")
	}
	return n.(*raw.StreamObj)
}

func arrayFloats(t *testing.T, a raw.Array) []float64 {
	t.Helper()
	out := make([]float64, a.Len())
	for i := 0; i < a.Len(); i++ {
		o, _ := a.Get(i)
		out[i] = o.(raw.Number).Float()
	}
	return out
}

func TestGeometryRoundTrip(t *testing.T) {
	_, page := attachedPage(t)
	f := mustField(t)

	avail := coords.Rectangle{X: 0, Y: 0, W: 200, H: 50}
	if err := f.Paint(page, avail); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	stream := getStream(t, f.Widget())
	bbox, _ := stream.Dictionary().(*raw.DictObj).GetArray("BBox")
	got := arrayFloats(t, bbox)
	want := []float64{0, 0, 200, 12}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("BBox[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !bbox.IsInline() {
		t.Error("BBox must be an inline array")
	}

	rect, _ := f.Widget().GetArray("Rect")
	gotRect := arrayFloats(t, rect)
	wantRect := []float64{0, 35.6, 200, 50}
	for i := range wantRect {
		if !almostEqual(gotRect[i], wantRect[i]) {
			t.Errorf("Rect[%d] = %v, want %v", i, gotRect[i], wantRect[i])
		}
	}
	if !rect.IsInline() {
		t.Error("Rect must be an inline array")
	}
}

func TestWidgetDictionaryShape(t *testing.T) {
	_, page := attachedPage(t)
	f := mustField(t, WithFieldName("surname"), WithValue("Doe"), WithDefaultValue("unknown"))
	if err := f.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	w := f.Widget()

	wantNames := map[string]string{
		"Type":    "Annot",
		"Subtype": "Widget",
		"FT":      "Tx",
	}
	for key, want := range wantNames {
		o, ok := w.Get(key)
		if !ok || o.(raw.Name).Value() != want {
			t.Errorf("%s = %v, want %s", key, o, want)
		}
	}
	if o, _ := w.Get("F"); o.(raw.Number).Int() != 4 {
		t.Errorf("F = %v, want 4", o)
	}
	if o, _ := w.Get("T"); string(o.(raw.String).Value()) != "surname" {
		t.Errorf("T = %v", o)
	}
	if o, _ := w.Get("V"); string(o.(raw.String).Value()) != "Doe" {
		t.Errorf("V = %v", o)
	}
	if o, _ := w.Get("DV"); string(o.(raw.String).Value()) != "unknown" {
		t.Errorf("DV = %v", o)
	}
	if p, _ := w.Get("P"); p != raw.Object(page.Dict()) {
		t.Error("P must back-reference the owning page node")
	}
	da, _ := w.Get("DA")
	das := string(da.(raw.String).Value())
	if !strings.Contains(das, "rg /F1 ") || !strings.HasSuffix(das, "Tf") {
		t.Errorf("DA = %q", das)
	}
	if !w.IsUnique() {
		t.Error("widget dictionary must be unique")
	}

	stream := getStream(t, w)
	sd := stream.Dictionary()
	if o, _ := sd.Get("Type"); o.(raw.Name).Value() != "XObject" {
		t.Errorf("appearance Type = %v", o)
	}
	if o, _ := sd.Get("Subtype"); o.(raw.Name).Value() != "Form" {
		t.Errorf("appearance Subtype = %v", o)
	}
}

func TestResourceSharing(t *testing.T) {
	doc, page := attachedPage(t)

	f1 := mustField(t)
	f2 := mustField(t)
	avail := coords.Rectangle{W: 200, H: 50}
	if err := f1.Paint(page, avail); err != nil {
		t.Fatal(err)
	}
	if err := f2.Paint(page, avail); err != nil {
		t.Fatal(err)
	}

	// one font entry despite two fields
	if n := page.FontResources().Len(); n != 1 {
		t.Errorf("font dict has %d entries, want 1", n)
	}

	acro, _ := doc.Catalog().GetDict("AcroForm")
	fields, _ := acro.(*raw.DictObj).GetArray("Fields")
	if fields.Len() != 2 {
		t.Errorf("Fields has %d entries, want 2", fields.Len())
	}

	// both appearance streams share one resources node, which is also the
	// document default and each widget's DR
	res1, _ := getStream(t, f1.Widget()).Dictionary().Get("Resources")
	res2, _ := getStream(t, f2.Widget()).Dictionary().Get("Resources")
	if res1 != res2 {
		t.Fatal("appearance streams must share one resources node")
	}
	dr, _ := acro.Get("DR")
	if dr != res1 {
		t.Fatal("AcroForm DR must alias the widget resources node")
	}
	dr1, _ := f1.Widget().Get("DR")
	dr2, _ := f2.Widget().Get("DR")
	if dr1 != res1 || dr2 != res1 {
		t.Fatal("widget DR must alias the shared resources node")
	}

	// mutating the shared node is visible through every owner
	res1.(*raw.DictObj).Set("Probe", raw.Bool(true))
	if !dr.(*raw.DictObj).Has("Probe") {
		t.Fatal("mutation not visible through catalog DR")
	}

	// the resources Font entry aliases the page's font dictionary
	fontEntry, _ := res1.(*raw.DictObj).GetDict("Font")
	if fontEntry.(*raw.DictObj) != page.FontResources() {
		t.Fatal("resources Font must alias the page font dictionary")
	}
}

// daFontName extracts the font resource name a widget's DA string uses.
func daFontName(t *testing.T, w *raw.DictObj) string {
	t.Helper()
	da, _ := w.Get("DA")
	for _, tok := range strings.Fields(string(da.(raw.String).Value())) {
		if strings.HasPrefix(tok, "/") {
			return strings.TrimPrefix(tok, "/")
		}
	}
	t.Fatal("DA carries no font name")
	return ""
}

func TestFontResolvesThroughOwnResourcesAcrossPages(t *testing.T) {
	doc := semantic.NewDocument()
	page1 := semantic.NewPage()
	page2 := semantic.NewPage()
	doc.AddPage(page1)
	doc.AddPage(page2)

	f1 := mustField(t, WithFont(fonts.Helvetica()))
	if err := f1.Paint(page1, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	f2 := mustField(t, WithFont(fonts.Courier()))
	if err := f2.Paint(page2, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}

	// sharing holds across pages too
	res1, _ := getStream(t, f1.Widget()).Dictionary().Get("Resources")
	res2, _ := getStream(t, f2.Widget()).Dictionary().Get("Resources")
	if res1 != res2 {
		t.Fatal("appearance streams must share one resources node")
	}

	// each widget's DA name must resolve to its own font through the
	// appearance stream's resources
	fontDict, ok := res2.(*raw.DictObj).GetDict("Font")
	if !ok {
		t.Fatal("shared resources carry no Font dictionary")
	}
	for _, tc := range []struct {
		widget *raw.DictObj
		base   string
	}{
		{f1.Widget(), "Helvetica"},
		{f2.Widget(), "Courier"},
	} {
		name := daFontName(t, tc.widget)
		entry, ok := fontDict.(*raw.DictObj).GetDict(name)
		if !ok {
			t.Fatalf("DA font %q absent from appearance resources", name)
		}
		base, _ := entry.Get("BaseFont")
		if got := base.(raw.Name).Value(); got != tc.base {
			t.Errorf("DA /%s resolves to %s, want %s", name, got, tc.base)
		}
	}
}

func TestAcroFormCreatedOncePerDocument(t *testing.T) {
	doc, page := attachedPage(t)

	f1 := mustField(t)
	if err := f1.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	acro1, _ := doc.Catalog().GetDict("AcroForm")

	f2 := mustField(t)
	if err := f2.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	acro2, _ := doc.Catalog().GetDict("AcroForm")
	if acro1 != acro2 {
		t.Fatal("AcroForm recreated for second field")
	}

	na, _ := acro1.Get("NeedAppearances")
	if !na.(raw.Boolean).Value() {
		t.Error("NeedAppearances must be true")
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	_, page := attachedPage(t)
	f := mustField(t)
	if err := f.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}

	stream := getStream(t, f.Widget())
	length, _ := stream.Dictionary().Get("Length")
	if length.(raw.Number).Int() != int64(len(stream.EncodedData())) {
		t.Errorf("Length = %v, want %d", length, len(stream.EncodedData()))
	}
	filter, _ := stream.Dictionary().Get("Filter")
	if filter.(raw.Name).Value() != "FlateDecode" {
		t.Errorf("Filter = %v", filter)
	}

	decoded, err := filters.NewFlateCodec().Decode(context.Background(), stream.EncodedData(), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != "/Tx BMC EMC" {
		t.Errorf("payload = %q, want %q", decoded, "/Tx BMC EMC")
	}
}

func TestRelayoutStability(t *testing.T) {
	_, page := attachedPage(t)
	f := mustField(t, WithFieldName("stable"), WithValue("v"), WithDefaultValue("dv"))
	if err := f.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}

	w := f.Widget()
	tBefore, _ := w.Get("T")
	vBefore, _ := w.Get("V")
	dvBefore, _ := w.Get("DV")
	drBefore, _ := w.Get("DR")
	streamBefore := getStream(t, w)

	if err := f.Paint(page, coords.Rectangle{X: 10, Y: 10, W: 300, H: 80}); err != nil {
		t.Fatal(err)
	}

	if f.Widget() != w {
		t.Fatal("re-layout replaced the widget node")
	}
	tAfter, _ := w.Get("T")
	vAfter, _ := w.Get("V")
	dvAfter, _ := w.Get("DV")
	drAfter, _ := w.Get("DR")
	if tAfter != tBefore || vAfter != vBefore || dvAfter != dvBefore {
		t.Error("re-layout touched value fields")
	}
	if drAfter != drBefore {
		t.Error("re-layout replaced the resources node")
	}
	if getStream(t, w) != streamBefore {
		t.Error("re-layout replaced the appearance stream")
	}

	bbox, _ := streamBefore.Dictionary().(*raw.DictObj).GetArray("BBox")
	got := arrayFloats(t, bbox)
	if !almostEqual(got[2], 300) || !almostEqual(got[3], 12) {
		t.Errorf("BBox = %v, want [.. .. 300 12]", got)
	}
	rect, _ := w.GetArray("Rect")
	gotRect := arrayFloats(t, rect)
	wantRect := []float64{10, 10 + 80 - 14.4, 310, 90}
	for i := range wantRect {
		if !almostEqual(gotRect[i], wantRect[i]) {
			t.Errorf("Rect[%d] = %v, want %v", i, gotRect[i], wantRect[i])
		}
	}
}

func TestAutoFieldNamesUnique(t *testing.T) {
	_, page := attachedPage(t)

	names := make(map[string]bool)
	for i := 0; i < 3; i++ {
		f := mustField(t)
		if err := f.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
			t.Fatal(err)
		}
		o, _ := f.Widget().Get("T")
		name := string(o.(raw.String).Value())
		if names[name] {
			t.Fatalf("auto name %q collided", name)
		}
		names[name] = true
	}
	if !names["field-000000"] || !names["field-000001"] || !names["field-000002"] {
		t.Errorf("unexpected auto names: %v", names)
	}
}

func TestAutoFieldNameSkipsExplicitCollisions(t *testing.T) {
	_, page := attachedPage(t)

	// an explicit name occupying the first auto slot
	f1 := mustField(t, WithFieldName("field-000001"))
	if err := f1.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	f2 := mustField(t)
	if err := f2.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	o, _ := f2.Widget().Get("T")
	if got := string(o.(raw.String).Value()); got == "field-000001" {
		t.Fatalf("auto name collided with explicit name %q", got)
	}
}

func TestAdditionalActions(t *testing.T) {
	_, page := attachedPage(t)
	f := mustField(t,
		WithFormatScript(`event.value = event.value.toUpperCase();`),
		WithValidateScript(`event.rc = event.value.length > 0;`),
	)
	if err := f.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}

	aa, ok := f.Widget().GetDict("AA")
	if !ok {
		t.Fatal("widget has no AA")
	}
	for _, key := range []string{"F", "V"} {
		action, ok := aa.(*raw.DictObj).GetDict(key)
		if !ok {
			t.Fatalf("AA has no %s action", key)
		}
		if s, _ := action.Get("S"); s.(raw.Name).Value() != "JavaScript" {
			t.Errorf("AA.%s.S = %v", key, s)
		}
		if js, ok := action.Get("JS"); !ok || len(js.(raw.String).Value()) == 0 {
			t.Errorf("AA.%s.JS missing", key)
		}
	}

	// fields without scripts carry no AA at all
	plain := mustField(t)
	if err := plain.Paint(page, coords.Rectangle{W: 200, H: 50}); err != nil {
		t.Fatal(err)
	}
	if plain.Widget().Has("AA") {
		t.Error("plain field must not carry AA")
	}
}
