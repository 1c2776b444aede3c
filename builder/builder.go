// Package builder offers a fluent API for assembling a form document:
// pages, fields and final serialization in one chain.
package builder

import (
	"io"

	"github.com/vellumpdf/vellum/coords"
	"github.com/vellumpdf/vellum/forms"
	"github.com/vellumpdf/vellum/ir/semantic"
	"github.com/vellumpdf/vellum/observability"
	"github.com/vellumpdf/vellum/writer"
)

// PDFBuilder assembles a document.
type PDFBuilder interface {
	// NewPage appends a page of the given size and returns its builder.
	NewPage(w, h float64) PageBuilder
	// Form returns the form-level builder.
	Form() FormBuilder
	// SetProducer sets the Producer info entry.
	SetProducer(producer string) PDFBuilder
	// SetLogger injects a logger used for building and writing.
	SetLogger(l observability.Logger) PDFBuilder
	// Document returns the assembled document.
	Document() (*semantic.Document, error)
	// Write serializes the assembled document.
	Write(out io.Writer) error
}

// PageBuilder places content on one page.
type PageBuilder interface {
	// AddTextField lays out a single-line text field in the given space.
	AddTextField(space coords.Rectangle, opts ...forms.Option) PageBuilder
	// AddTextArea lays out a multiline text field in the given space.
	AddTextArea(space coords.Rectangle, lines int, opts ...forms.Option) PageBuilder
	// Finish returns to the PDFBuilder.
	Finish() PDFBuilder
}

type builderImpl struct {
	doc      *semantic.Document
	producer string
	logger   observability.Logger
	err      error
}

type pageBuilderImpl struct {
	parent *builderImpl
	page   *semantic.Page
}

func NewBuilder() PDFBuilder {
	return &builderImpl{doc: semantic.NewDocument(), logger: observability.NopLogger{}}
}

func (b *builderImpl) NewPage(w, h float64) PageBuilder {
	page := semantic.NewPageWithSize(coords.Rectangle{W: w, H: h})
	b.doc.AddPage(page)
	return &pageBuilderImpl{parent: b, page: page}
}

func (b *builderImpl) SetProducer(producer string) PDFBuilder {
	b.producer = producer
	return b
}

func (b *builderImpl) SetLogger(l observability.Logger) PDFBuilder {
	b.logger = l
	return b
}

func (b *builderImpl) Document() (*semantic.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

func (b *builderImpl) Write(out io.Writer) error {
	if b.err != nil {
		return b.err
	}
	return writer.Write(out, b.doc, writer.Config{
		Producer: b.producer,
		Logger:   b.logger,
	})
}

// fail records the first error; later calls keep chaining but become
// no-ops until Document or Write surfaces it.
func (b *builderImpl) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (p *pageBuilderImpl) AddTextField(space coords.Rectangle, opts ...forms.Option) PageBuilder {
	if p.parent.err != nil {
		return p
	}
	opts = append([]forms.Option{forms.WithLogger(p.parent.logger)}, opts...)
	f, err := forms.NewTextField(opts...)
	if err != nil {
		p.parent.fail(err)
		return p
	}
	if err := f.Paint(p.page, space); err != nil {
		p.parent.fail(err)
	}
	return p
}

func (p *pageBuilderImpl) AddTextArea(space coords.Rectangle, lines int, opts ...forms.Option) PageBuilder {
	if p.parent.err != nil {
		return p
	}
	opts = append([]forms.Option{forms.WithLogger(p.parent.logger)}, opts...)
	f, err := forms.NewTextArea(lines, opts...)
	if err != nil {
		p.parent.fail(err)
		return p
	}
	if err := f.Paint(p.page, space); err != nil {
		p.parent.fail(err)
	}
	return p
}

func (p *pageBuilderImpl) Finish() PDFBuilder { return p.parent }
