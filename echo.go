package twidge

import "strings"

// Echo accumulates the text of every event it receives. Mostly useful for
// inspecting what the decoder produces on a given terminal.
type Echo struct {
	events []Event
}

// NewEcho returns an empty Echo.
func NewEcho() *Echo { return &Echo{} }

// Dispatch records the event. Echo accepts everything.
func (e *Echo) Dispatch(ev Event) error {
	e.events = append(e.events, ev)
	return nil
}

// Render joins the recorded text; named keys render as their token.
func (e *Echo) Render() string {
	var b strings.Builder
	for _, ev := range e.events {
		if ev.IsText() {
			b.WriteString(ev.data)
		} else {
			b.WriteString(ev.String())
		}
	}
	return b.String()
}

// Result returns the rendered text.
func (e *Echo) Result() any { return e.Render() }

// EchoRaw records the raw byte form of every event, for debugging escape
// sequences that the keymap does not cover.
type EchoRaw struct {
	chunks []string
}

// NewEchoRaw returns an empty EchoRaw.
func NewEchoRaw() *EchoRaw { return &EchoRaw{} }

// Dispatch records the event's payload.
func (e *EchoRaw) Dispatch(ev Event) error {
	e.chunks = append(e.chunks, ev.String())
	return nil
}

// Render lists the recorded chunks space-separated.
func (e *EchoRaw) Render() string { return strings.Join(e.chunks, " ") }
