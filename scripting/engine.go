// Package scripting executes the JavaScript actions a form field may
// carry. Scripts run against a DOM view of the document's field registry;
// field actions additionally see an event object carrying the value under
// edit.
package scripting

import "context"

// Engine is a JavaScript engine bound to a document DOM.
type Engine interface {
	// Execute runs a free-standing script.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RunFieldAction runs a format or validate action. The event's Value
	// is visible to the script as event.value and read back afterwards;
	// a validate script may veto by setting event.rc = false.
	RunFieldAction(ctx context.Context, script string, event *FieldEvent) error

	// RegisterDOM binds the document view scripts operate on.
	RegisterDOM(dom DOM) error
}

// FieldEvent is the mutable state a field action operates on.
type FieldEvent struct {
	Value string
	RC    bool
}

// DOM exposes the document's fields to scripts.
type DOM interface {
	// GetField returns a field proxy by its fully qualified name.
	GetField(name string) (FieldProxy, error)

	// Alert surfaces app.alert calls.
	Alert(message string)
}

// FieldProxy is one form field as seen by a script.
type FieldProxy interface {
	Name() string
	GetValue() string
	SetValue(value string)
}
