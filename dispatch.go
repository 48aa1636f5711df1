package twidge

import (
	"errors"
	"fmt"
)

// ErrNoHandler is returned by Table.Dispatch when an event matches no
// binding and the table has no fallback. It signals a wiring bug in the
// widget tree; callers may log it and keep processing later events.
var ErrNoHandler = errors.New("no handler for event")

// handler is the resolved form of a declared handler: exactly one of the
// two calling conventions, decided once at table build so the dispatch
// path stays branch-light.
type handler struct {
	run0 func()
	run1 func(Event)
}

func (h handler) valid() bool { return h.run0 != nil || h.run1 != nil }

func (h handler) invoke(ev Event) {
	if h.run0 != nil {
		h.run0()
		return
	}
	h.run1(ev)
}

// resolveHandler accepts the two supported handler shapes. Anything else is
// a construction-time error, never a per-event one.
func resolveHandler(fn any) (handler, error) {
	switch f := fn.(type) {
	case func():
		return handler{run0: f}, nil
	case func(Event):
		return handler{run1: f}, nil
	case nil:
		return handler{}, errors.New("nil handler")
	default:
		return handler{}, fmt.Errorf("handler must be func() or func(Event), got %T", fn)
	}
}

// Binding declares that a set of events is handled by one handler. Handler
// must be func() or func(Event).
type Binding struct {
	Events  []Event
	Handler any
}

// On builds a Binding; a convenience for declaring handler tables inline.
func On(fn any, events ...Event) Binding {
	return Binding{Events: events, Handler: fn}
}

// Table maps events to handlers with one optional fallback. Build it once
// per widget instance; building from the same declarations is idempotent
// and side-effect free.
type Table struct {
	entries  map[Event]handler
	fallback handler
}

// NewTable resolves the declared bindings into an event table. A handler
// of unsupported shape fails the construction.
func NewTable(bindings []Binding, fallback any) (*Table, error) {
	t := &Table{entries: make(map[Event]handler, len(bindings))}
	if err := t.Update(bindings, fallback); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is NewTable for widgets whose bindings are static; an invalid
// handler is a programming error in the widget, so it panics with a
// diagnostic naming the offending event.
func MustTable(bindings []Binding, fallback any) *Table {
	t, err := NewTable(bindings, fallback)
	if err != nil {
		panic("twidge: " + err.Error())
	}
	return t
}

// Update merges additional bindings into the table, last write wins per
// event. A non-nil fallback replaces the current one. Composites use this
// to layer generic behaviors onto a base widget's table.
func (t *Table) Update(bindings []Binding, fallback any) error {
	for _, b := range bindings {
		h, err := resolveHandler(b.Handler)
		if err != nil {
			return fmt.Errorf("binding for %v: %w", b.Events, err)
		}
		for _, ev := range b.Events {
			t.entries[ev] = h
		}
	}
	if fallback != nil {
		h, err := resolveHandler(fallback)
		if err != nil {
			return fmt.Errorf("fallback: %w", err)
		}
		t.fallback = h
	}
	return nil
}

// Dispatch routes one event: exact match, else fallback, else ErrNoHandler.
// The error is fatal to this call only.
func (t *Table) Dispatch(ev Event) error {
	h, ok := t.entries[ev]
	if !ok {
		h = t.fallback
	}
	if !h.valid() {
		return fmt.Errorf("%w: %v", ErrNoHandler, ev)
	}
	h.invoke(ev)
	return nil
}
