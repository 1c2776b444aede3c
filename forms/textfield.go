package forms

import (
	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
)

// TextField is a single-line interactive text field.
type TextField struct {
	cfg    config
	widget *raw.DictObj
}

// NewTextField constructs a detached text field. A negative font size is
// rejected here, not at attach time.
func NewTextField(opts ...Option) (*TextField, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TextField{cfg: cfg}, nil
}

// Attach synthesizes the field's widget on the given page, sized to box.
// It is idempotent: once the widget exists, Attach is a no-op. On a page
// without a rooted document nothing is created and a later Attach may
// succeed.
func (f *TextField) Attach(page *semantic.Page, box coords.Rectangle) error {
	if f.widget != nil {
		return nil
	}
	w, err := f.cfg.synthesize(page, box, f.cfg.fontSize, 0)
	if err != nil {
		return err
	}
	f.widget = w
	return nil
}

// UpdateGeometry rewrites the widget's placement for a new layout box.
// No-op while the widget does not exist. Only geometry changes; value,
// default value, name and resources are untouched.
func (f *TextField) UpdateGeometry(box coords.Rectangle) {
	if f.widget == nil {
		return
	}
	updateWidgetGeometry(f.widget, box, f.cfg.fontSize)
}

// Paint runs one layout pass: compute the content box, attach if still
// needed, then normalize geometry.
func (f *TextField) Paint(page *semantic.Page, available coords.Rectangle) error {
	box := ContentBox(available, f.cfg.fontSize)
	if err := f.Attach(page, box); err != nil {
		return err
	}
	f.UpdateGeometry(box)
	return nil
}

// Widget exposes the synthesized widget dictionary, nil while detached.
func (f *TextField) Widget() *raw.DictObj { return f.widget }

// Synthesized reports whether the one-time widget creation has happened.
func (f *TextField) Synthesized() bool { return f.widget != nil }

// FontSize returns the field's font size.
func (f *TextField) FontSize() float64 { return f.cfg.fontSize }
