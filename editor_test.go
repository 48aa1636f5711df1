package twidge

import (
	"strings"
	"testing"
)

func typeText(t *testing.T, w Dispatcher, text string) {
	t.Helper()
	for _, r := range text {
		if err := w.Dispatch(Text(string(r))); err != nil {
			t.Fatal(err)
		}
	}
}

func TestEditText(t *testing.T) {
	t.Run("EndBackspaceDeleteWord", func(t *testing.T) {
		e := NewEditText("hello world")
		e.Dispatch(Key("end"))
		e.Dispatch(Key("backspace"))
		if e.Text() != "hello worl" {
			t.Fatalf("after end+backspace: %q", e.Text())
		}
		e.Dispatch(Key("ctrl+h"))
		if e.Text() != "hello" {
			t.Fatalf("after delete-word: %q", e.Text())
		}
	})

	t.Run("DeleteWordAfterSpace", func(t *testing.T) {
		// just past a separator only the separator goes
		e := NewEditText("foo bar ")
		e.Dispatch(Key("end"))
		e.Dispatch(Key("ctrl+h"))
		if e.Text() != "foo bar" {
			t.Fatalf("after delete-word: %q", e.Text())
		}
		e.Dispatch(Key("ctrl+h"))
		if e.Text() != "foo" {
			t.Fatalf("after second delete-word: %q", e.Text())
		}
	})

	t.Run("DeleteWordNoSpace", func(t *testing.T) {
		e := NewEditText("word")
		e.Dispatch(Key("end"))
		e.Dispatch(Key("ctrl+h"))
		if e.Text() != "" {
			t.Fatalf("after delete-word: %q", e.Text())
		}
	})

	t.Run("InsertNewlineRune", func(t *testing.T) {
		e := NewEditText("hello")
		e.Dispatch(Key("end"))
		e.Dispatch(Key("enter"))
		if e.Text() != "hello\n" {
			t.Fatalf("after enter: %q", e.Text())
		}
		e.Dispatch(Key("right"))
		if e.Text() != "hello\n" {
			t.Fatalf("cursor motion changed text: %q", e.Text())
		}
	})

	t.Run("TypeAtCursor", func(t *testing.T) {
		e := NewEditText("")
		typeText(t, e, "hey")
		if e.Text() != "hey" {
			t.Fatalf("text = %q", e.Text())
		}
		e.Dispatch(Key("home"))
		typeText(t, e, "o")
		if e.Text() != "ohey" {
			t.Fatalf("text = %q", e.Text())
		}
	})

	t.Run("SpaceAndTabTokensInsert", func(t *testing.T) {
		e := NewEditText("")
		typeText(t, e, "ab")
		e.Dispatch(Key("space"))
		typeText(t, e, "c")
		e.Dispatch(Key("tab"))
		if e.Text() != "ab c\t" {
			t.Fatalf("text = %q", e.Text())
		}
	})

	t.Run("NamedKeysDoNotInsert", func(t *testing.T) {
		e := NewEditText("x")
		e.Dispatch(Key("delete"))
		e.Dispatch(Key("pageup"))
		e.Dispatch(Key("f5"))
		if e.Text() != "x" {
			t.Fatalf("text = %q", e.Text())
		}
	})

	t.Run("MultiRuneChunkIgnored", func(t *testing.T) {
		e := NewEditText("")
		e.Dispatch(Text("paste"))
		if e.Text() != "" {
			t.Fatalf("text = %q", e.Text())
		}
	})

	t.Run("NewlineSplitsLine", func(t *testing.T) {
		e := NewEditText("hello world")
		for i := 0; i < 5; i++ {
			e.Dispatch(Key("right"))
		}
		e.Dispatch(Key("enter"))
		if e.Text() != "hello\n world" {
			t.Fatalf("text = %q", e.Text())
		}
		if row, col := e.Cursor(); row != 1 || col != 0 {
			t.Fatalf("cursor = (%d,%d), want (1,0)", row, col)
		}
	})

	t.Run("BackspaceJoinsLines", func(t *testing.T) {
		e := NewEditText("ab\ncd")
		e.Dispatch(Key("down"))
		e.Dispatch(Key("home"))
		e.Dispatch(Key("backspace"))
		if e.Text() != "abcd" {
			t.Fatalf("text = %q", e.Text())
		}
		if row, col := e.Cursor(); row != 0 || col != 2 {
			t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
		}
	})

	t.Run("VerticalMotionClampsColumn", func(t *testing.T) {
		e := NewEditText("long line\nab")
		e.Dispatch(Key("end"))
		e.Dispatch(Key("down"))
		if row, col := e.Cursor(); row != 1 || col != 2 {
			t.Fatalf("cursor = (%d,%d), want (1,2)", row, col)
		}
	})

	t.Run("LeftWrapsToPreviousLine", func(t *testing.T) {
		e := NewEditText("ab\ncd")
		e.Dispatch(Key("down"))
		e.Dispatch(Key("home"))
		e.Dispatch(Key("left"))
		if row, col := e.Cursor(); row != 0 || col != 2 {
			t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
		}
	})

	t.Run("WordMotion", func(t *testing.T) {
		e := NewEditText("one two three")
		e.Dispatch(Key("ctrl+right"))
		if _, col := e.Cursor(); col != 4 {
			t.Fatalf("after next-word, col = %d, want 4", col)
		}
		e.Dispatch(Key("ctrl+right"))
		if _, col := e.Cursor(); col != 8 {
			t.Fatalf("after next-word, col = %d, want 8", col)
		}
		e.Dispatch(Key("ctrl+left"))
		if _, col := e.Cursor(); col != 4 {
			t.Fatalf("after prev-word, col = %d, want 4", col)
		}
	})
}

func TestEditLine(t *testing.T) {
	t.Run("EnterInert", func(t *testing.T) {
		e := NewEditLine("ab")
		e.Dispatch(Key("enter"))
		if e.Text() != "ab" {
			t.Fatalf("text = %q", e.Text())
		}
	})

	t.Run("VerticalMotionInert", func(t *testing.T) {
		e := NewEditLine("ab")
		e.Dispatch(Key("up"))
		e.Dispatch(Key("down"))
		if row, col := e.Cursor(); row != 0 || col != 0 {
			t.Fatalf("cursor = (%d,%d), want (0,0)", row, col)
		}
	})

	t.Run("InitialNewlinesFlattened", func(t *testing.T) {
		e := NewEditLine("a\nb")
		if e.Text() != "a b" {
			t.Fatalf("text = %q", e.Text())
		}
	})
}

func TestEditTextRender(t *testing.T) {
	t.Run("BlurredFullContent", func(t *testing.T) {
		e := NewEditText("hello world")
		e.Dispatch(BlurEvent)
		if got := e.RenderSize(80, 24); got != "hello world" {
			t.Errorf("RenderSize = %q", got)
		}
	})

	t.Run("ScrollWindowAtHome", func(t *testing.T) {
		e := NewEditText("abcdefghij")
		e.Dispatch(BlurEvent)
		if got := e.RenderSize(5, 24); got != "abcde" {
			t.Errorf("RenderSize = %q", got)
		}
	})

	t.Run("ScrollWindowAtEnd", func(t *testing.T) {
		e := NewEditText("abcdefghij")
		e.Dispatch(Key("end"))
		e.Dispatch(BlurEvent)
		if got := e.RenderSize(5, 24); got != "ghij " {
			t.Errorf("RenderSize = %q", got)
		}
	})

	t.Run("LineBandAroundCursorRow", func(t *testing.T) {
		e := NewEditText("a\nb\nc\nd\ne\nf\ng")
		for i := 0; i < 3; i++ {
			e.Dispatch(Key("down"))
		}
		e.Dispatch(BlurEvent)
		got := e.RenderSize(10, 5) // band height 3 after frame margin
		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines: %q", len(lines), got)
		}
		if lines[0] != "c" || lines[2] != "e" {
			t.Errorf("band = %q", lines)
		}
	})

	t.Run("WrapModeKeepsWholeLine", func(t *testing.T) {
		e := NewEditText("abcdefghij").SetOverflow(OverflowWrap)
		e.Dispatch(BlurEvent)
		if got := e.RenderSize(5, 24); got != "abcdefghij" {
			t.Errorf("RenderSize = %q", got)
		}
	})
}

func TestParsedEdit(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		e := NewEditFloat()
		typeText(t, e, "1")
		if v, err := e.Value(); err != nil || v != 1.0 {
			t.Fatalf("Value() = %v, %v", v, err)
		}
		typeText(t, e, ".5")
		if v, err := e.Value(); err != nil || v != 1.5 {
			t.Fatalf("Value() = %v, %v", v, err)
		}
		typeText(t, e, "a")
		if _, err := e.Value(); err == nil {
			t.Fatal("expected parse error for 1.5a")
		}
		if e.Result() != nil {
			t.Fatalf("Result() = %v, want nil while invalid", e.Result())
		}
		e.Dispatch(Key("backspace"))
		if v, err := e.Value(); err != nil || v != 1.5 {
			t.Fatalf("Value() = %v, %v", v, err)
		}
	})

	t.Run("Int", func(t *testing.T) {
		e := NewEditInt()
		typeText(t, e, "42")
		if v, err := e.Value(); err != nil || v != 42 {
			t.Fatalf("Value() = %v, %v", v, err)
		}
	})
}
