package twidge

import "testing"

// sink records every event that reaches it.
type sink struct {
	events []Event
}

func (s *sink) Dispatch(ev Event) error {
	s.events = append(s.events, ev)
	return nil
}

func (s *sink) Result() any { return len(s.events) }

func TestEscape(t *testing.T) {
	t.Run("ConsumesMatchedKey", func(t *testing.T) {
		inner := &sink{}
		fired := 0
		e := NewEscape(inner, Key("ctrl+c"), func() { fired++ })

		e.Dispatch(Text("a"))
		e.Dispatch(Key("ctrl+c"))
		e.Dispatch(Text("b"))

		if fired != 1 {
			t.Errorf("fired = %d, want 1", fired)
		}
		if len(inner.events) != 2 || inner.events[0] != Text("a") || inner.events[1] != Text("b") {
			t.Errorf("forwarded = %v", inner.events)
		}
	})

	t.Run("Passthrough", func(t *testing.T) {
		e := NewEscape(NewEditLine("hi"), Key("ctrl+c"), func() {})
		if e.Render() != "hi" {
			t.Errorf("Render() = %q", e.Render())
		}
		if e.Result() != "hi" {
			t.Errorf("Result() = %v", e.Result())
		}
	})
}

func TestAbort(t *testing.T) {
	seq := []Event{Key("escape"), Key("escape"), Key("escape")}

	t.Run("TripleEscape", func(t *testing.T) {
		inner := &sink{}
		fired := 0
		a := NewAbort(inner, seq, func() { fired++ })

		a.Dispatch(Text("a"))
		a.Dispatch(Key("escape"))
		a.Dispatch(Key("escape"))
		if fired != 0 {
			t.Fatal("fired before the sequence completed")
		}
		a.Dispatch(Key("escape"))
		if fired != 1 {
			t.Errorf("fired = %d, want 1", fired)
		}
		// only the letter reaches the widget; the escapes never do
		if len(inner.events) != 1 || inner.events[0] != Text("a") {
			t.Errorf("forwarded = %v", inner.events)
		}
	})

	t.Run("BrokenSequenceFlushes", func(t *testing.T) {
		inner := &sink{}
		a := NewAbort(inner, seq, func() { t.Error("should not fire") })

		a.Dispatch(Key("escape"))
		a.Dispatch(Key("escape"))
		if len(inner.events) != 0 {
			t.Fatalf("prefix escaped early: %v", inner.events)
		}
		a.Dispatch(Text("x"))
		want := []Event{Key("escape"), Key("escape"), Text("x")}
		if !equalEvents(inner.events, want) {
			t.Errorf("forwarded = %v, want %v", inner.events, want)
		}
	})

	t.Run("RetriesAfterBreak", func(t *testing.T) {
		inner := &sink{}
		fired := 0
		a := NewAbort(inner, seq, func() { fired++ })

		a.Dispatch(Key("escape"))
		a.Dispatch(Text("x"))
		a.Dispatch(Key("escape"))
		a.Dispatch(Key("escape"))
		a.Dispatch(Key("escape"))
		if fired != 1 {
			t.Errorf("fired = %d, want 1", fired)
		}
		want := []Event{Key("escape"), Text("x")}
		if !equalEvents(inner.events, want) {
			t.Errorf("forwarded = %v, want %v", inner.events, want)
		}
	})

	t.Run("FlushKeepsRestartableSuffix", func(t *testing.T) {
		inner := &sink{}
		fired := 0
		target := []Event{Text("a"), Text("b")}
		a := NewAbort(inner, target, func() { fired++ })

		// a, a: the first a is flushed, the second still opens a match
		a.Dispatch(Text("a"))
		a.Dispatch(Text("a"))
		if len(inner.events) != 1 || inner.events[0] != Text("a") {
			t.Fatalf("forwarded = %v", inner.events)
		}
		a.Dispatch(Text("b"))
		if fired != 1 {
			t.Errorf("fired = %d, want 1", fired)
		}
	})

	t.Run("EmptySequencePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for empty sequence")
			}
		}()
		NewAbort(&sink{}, nil, func() {})
	})
}
