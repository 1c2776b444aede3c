package forms

import (
	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
)

// TextArea is a multiline text field. Its widget carries the multiline
// field flag and its appearance covers number-of-lines rows.
type TextArea struct {
	cfg    config
	lines  int
	widget *raw.DictObj
}

// NewTextArea constructs a detached text area spanning lines rows.
func NewTextArea(lines int, opts ...Option) (*TextArea, error) {
	if lines <= 0 {
		return nil, ErrInvalidLineCount
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TextArea{cfg: cfg, lines: lines}, nil
}

// Attach synthesizes the multiline widget. Same idempotence and deferral
// contract as TextField.Attach.
func (f *TextArea) Attach(page *semantic.Page, box coords.Rectangle) error {
	if f.widget != nil {
		return nil
	}
	visible := (f.cfg.fontSize + 1) * float64(f.lines)
	w, err := f.cfg.synthesize(page, box, visible, FlagMultiline)
	if err != nil {
		return err
	}
	f.widget = w
	return nil
}

// UpdateGeometry rewrites placement for a new layout box. The appearance
// height snaps to the raw font size on update, mirroring the single-line
// behavior.
func (f *TextArea) UpdateGeometry(box coords.Rectangle) {
	if f.widget == nil {
		return
	}
	updateWidgetGeometry(f.widget, box, f.cfg.fontSize)
}

// Paint runs one layout pass for the text area.
func (f *TextArea) Paint(page *semantic.Page, available coords.Rectangle) error {
	box := contentBoxLines(available, f.cfg.fontSize, f.lines)
	if err := f.Attach(page, box); err != nil {
		return err
	}
	f.UpdateGeometry(box)
	return nil
}

// Widget exposes the synthesized widget dictionary, nil while detached.
func (f *TextArea) Widget() *raw.DictObj { return f.widget }

// Synthesized reports whether the one-time widget creation has happened.
func (f *TextArea) Synthesized() bool { return f.widget != nil }
