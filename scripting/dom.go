package scripting

import (
	"fmt"

	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
)

// DocumentDOM exposes a document's AcroForm registry to scripts. Field
// reads and writes go straight through to the widget nodes in the graph.
type DocumentDOM struct {
	doc    *semantic.Document
	Alerts []string
}

func NewDocumentDOM(doc *semantic.Document) *DocumentDOM {
	return &DocumentDOM{doc: doc}
}

func (d *DocumentDOM) Alert(message string) { d.Alerts = append(d.Alerts, message) }

func (d *DocumentDOM) GetField(name string) (FieldProxy, error) {
	catalog := d.doc.Catalog()
	if catalog == nil {
		return nil, fmt.Errorf("scripting: document has no catalog")
	}
	acro, ok := catalog.GetDict("AcroForm")
	if !ok {
		return nil, fmt.Errorf("scripting: document has no form registry")
	}
	fields, ok := acro.(*raw.DictObj).GetArray("Fields")
	if !ok {
		return nil, fmt.Errorf("scripting: form registry has no field list")
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
		s, ok := t.(raw.String)
		if !ok || string(s.Value()) != name {
			continue
		}
		return &widgetProxy{dict: dict, name: name}, nil
	}
	return nil, fmt.Errorf("scripting: no field named %q", name)
}

// widgetProxy proxies one widget dictionary's V entry.
type widgetProxy struct {
	dict *raw.DictObj
	name string
}

func (p *widgetProxy) Name() string { return p.name }

func (p *widgetProxy) GetValue() string {
	v, ok := p.dict.Get("V")
	if !ok {
		return ""
	}
	s, ok := v.(raw.String)
	if !ok {
		return ""
	}
	return string(s.Value())
}

func (p *widgetProxy) SetValue(value string) {
	p.dict.Set("V", raw.StrLiteral(value))
}
