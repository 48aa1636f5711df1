package twidge

// Escape wraps a widget and fires a stop action when one configured key
// arrives. The matched key is consumed, everything else forwards to the
// wrapped widget.
type Escape struct {
	inner  any
	key    Event
	action func()
}

// NewEscape wraps inner; action runs when key arrives. A typical action is
// the runner's Stop.
func NewEscape(inner any, key Event, action func()) *Escape {
	return &Escape{inner: inner, key: key, action: action}
}

// Dispatch consumes the escape key, forwarding anything else.
func (e *Escape) Dispatch(ev Event) error {
	if ev == e.key {
		e.action()
		return nil
	}
	return dispatchTo(e.inner, ev)
}

// Render shows the wrapped widget unchanged.
func (e *Escape) Render() string { return renderOf(e.inner) }

// RenderSize sizes the wrapped widget when it supports it.
func (e *Escape) RenderSize(w, h int) string { return renderSized(e.inner, w, h) }

// Result passes the wrapped widget's result through.
func (e *Escape) Result() any { return resultOf(e.inner) }

// Abort recognizes a fixed event sequence and fires a terminal action.
// Events that extend a prefix of the target are withheld rather than
// forwarded; completing the sequence fires the action with nothing
// delivered to the wrapped widget, while breaking it flushes the withheld
// events through.
type Abort struct {
	inner   any
	seq     []Event
	pending []Event
	action  func()
}

// NewAbort wraps inner with a target sequence; action is typically the
// runner's Abort. Panics on an empty sequence.
func NewAbort(inner any, seq []Event, action func()) *Abort {
	if len(seq) == 0 {
		panic("twidge: Abort requires a non-empty sequence")
	}
	return &Abort{inner: inner, seq: seq, action: action}
}

// Dispatch matches before forwarding, so a completed sequence is consumed
// instead of reaching the wrapped widget.
func (a *Abort) Dispatch(ev Event) error {
	a.pending = append(a.pending, ev)
	if len(a.pending) == len(a.seq) && equalEvents(a.pending, a.seq) {
		a.pending = a.pending[:0]
		a.action()
		return nil
	}
	if a.isPrefix(a.pending) {
		return nil
	}
	// sequence broken: flush withheld events, keeping any new suffix that
	// could still start a match
	flush := a.pending
	a.pending = nil
	for tail := 1; tail < len(flush); tail++ {
		if a.isPrefix(flush[tail:]) {
			a.pending = append(a.pending, flush[tail:]...)
			flush = flush[:tail]
			break
		}
	}
	var firstErr error
	for _, e := range flush {
		if err := dispatchTo(a.inner, e); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *Abort) isPrefix(events []Event) bool {
	if len(events) >= len(a.seq) {
		return false
	}
	return equalEvents(events, a.seq[:len(events)])
}

func equalEvents(a, b []Event) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Render shows the wrapped widget unchanged.
func (a *Abort) Render() string { return renderOf(a.inner) }

// RenderSize sizes the wrapped widget when it supports it.
func (a *Abort) RenderSize(w, h int) string { return renderSized(a.inner, w, h) }

// Result passes the wrapped widget's result through.
func (a *Abort) Result() any { return resultOf(a.inner) }
