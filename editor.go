package twidge

import (
	"strconv"
	"strings"
)

// Overflow selects how an editor handles lines wider than the viewport.
type Overflow uint8

const (
	// OverflowScroll keeps a fixed-width window around the cursor column.
	OverflowScroll Overflow = iota
	// OverflowWrap lets the terminal wrap long lines.
	OverflowWrap
)

// EditText is a text editor over one or more lines with a (row, col)
// cursor. col may equal the line length — the append position. All
// mutation happens through its handler table.
type EditText struct {
	lines     [][]rune
	row, col  int
	focus     bool
	multiline bool
	overflow  Overflow
	table     *Table
}

// NewEditText returns a multi-line editor with scrolling overflow.
func NewEditText(text string) *EditText {
	return newEdit(text, true)
}

// NewEditLine returns a single-line editor: up/down and enter are inert,
// and newlines in the initial text are kept out by construction.
func NewEditLine(text string) *EditText {
	return newEdit(strings.ReplaceAll(text, "\n", " "), false)
}

func newEdit(text string, multiline bool) *EditText {
	e := &EditText{multiline: multiline}
	for _, line := range strings.Split(text, "\n") {
		e.lines = append(e.lines, []rune(line))
	}
	e.table = MustTable([]Binding{
		On(e.cursorLeft, Key("left")),
		On(e.cursorRight, Key("right")),
		On(e.cursorUp, Key("up")),
		On(e.cursorDown, Key("down")),
		On(e.nextWord, Key("ctrl+right")),
		On(e.prevWord, Key("ctrl+left")),
		On(e.cursorHome, Key("home")),
		On(e.cursorEnd, Key("end")),
		On(e.backspace, Key("backspace")),
		On(e.deleteWord, Key("ctrl+h")),
		On(e.newline, Key("enter")),
		On(func() { e.focus = true }, FocusEvent),
		On(func() { e.focus = false }, BlurEvent),
	}, e.insert)
	return e
}

// SetOverflow selects the wide-line policy.
func (e *EditText) SetOverflow(o Overflow) *EditText {
	e.overflow = o
	return e
}

// Dispatch routes one event through the editor's table.
func (e *EditText) Dispatch(ev Event) error { return e.table.Dispatch(ev) }

// Text returns the editor content.
func (e *EditText) Text() string {
	parts := make([]string, len(e.lines))
	for i, line := range e.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Result returns the content.
func (e *EditText) Result() any { return e.Text() }

// Cursor returns the (row, col) cursor position.
func (e *EditText) Cursor() (row, col int) { return e.row, e.col }

func (e *EditText) line() []rune { return e.lines[e.row] }

func (e *EditText) cursorLeft() {
	if e.col != 0 {
		e.col--
	} else if e.row != 0 {
		e.row--
		e.col = len(e.line())
	}
}

func (e *EditText) cursorRight() {
	if e.col < len(e.line()) {
		e.col++
	} else if e.row < len(e.lines)-1 {
		e.row++
		e.col = 0
	}
}

func (e *EditText) cursorUp() {
	if e.multiline && e.row > 0 {
		e.row--
		e.col = min(e.col, len(e.line()))
	}
}

func (e *EditText) cursorDown() {
	if e.multiline && e.row < len(e.lines)-1 {
		e.row++
		e.col = min(e.col, len(e.line()))
	}
}

func (e *EditText) nextWord() {
	line := e.line()
	next := -1
	for i := e.col; i < len(line); i++ {
		if line[i] == ' ' {
			next = i
			break
		}
	}
	if next == -1 {
		e.col = len(line)
	} else {
		e.col = next + 1
	}
}

func (e *EditText) prevWord() {
	line := e.line()
	prev := -1
	for i := e.col - 2; i >= 0; i-- {
		if line[i] == ' ' {
			prev = e.col - 2 - i
			break
		}
	}
	if prev < 0 {
		e.col = 0
	} else {
		e.col = max(0, e.col-prev-1)
	}
}

func (e *EditText) cursorHome() { e.col = 0 }

func (e *EditText) cursorEnd() { e.col = len(e.line()) }

func (e *EditText) backspace() {
	if e.col != 0 {
		line := e.line()
		e.lines[e.row] = append(line[:e.col-1], line[e.col:]...)
		e.col--
	} else if e.multiline && e.row != 0 {
		length := len(e.lines[e.row-1])
		e.lines[e.row-1] = append(e.lines[e.row-1], e.line()...)
		e.lines = append(e.lines[:e.row], e.lines[e.row+1:]...)
		e.row--
		e.col = length
	}
}

// deleteWord removes back to the nearest space at or before the cursor;
// with the cursor just past a space only that separator goes.
func (e *EditText) deleteWord() {
	line := e.line()
	n := 0
	for i := e.col - 1; i >= 0; i-- {
		if line[i] == ' ' {
			n = i
			break
		}
	}
	e.lines[e.row] = append(line[:n:n], line[e.col:]...)
	e.col = n
}

func (e *EditText) newline() {
	if !e.multiline {
		return
	}
	line := e.line()
	rest := append([]rune(nil), line[e.col:]...)
	e.lines[e.row] = line[:e.col:e.col]
	e.lines = append(e.lines[:e.row+1], append([][]rune{rest}, e.lines[e.row+1:]...)...)
	e.row++
	e.col = 0
}

// insert is the default handler: printable text goes in at the cursor.
// The space and tab key tokens convert back to their characters; any other
// named key and any multi-rune chunk is dropped.
func (e *EditText) insert(ev Event) {
	var r rune
	switch {
	case ev == Key("space"):
		r = ' '
	case ev == Key("tab"):
		r = '\t'
	default:
		var ok bool
		if r, ok = ev.Rune(); !ok {
			return
		}
	}
	line := e.line()
	e.lines[e.row] = append(line[:e.col:e.col], append([]rune{r}, line[e.col:]...)...)
	e.col++
}

// Render renders at a default terminal size.
func (e *EditText) Render() string { return e.RenderSize(80, 24) }

// RenderSize windows the content twice around the cursor: a band of lines
// around the cursor row, then a column band within the cursor line. The
// cursor cell is highlighted while focused.
func (e *EditText) RenderSize(width, height int) string {
	if height > 2 {
		height -= 2
	}
	before, cline, after := Window(e.lines, e.row, height)

	var sstr, cstr, estr string
	switch e.overflow {
	case OverflowScroll:
		sstr, cstr, estr = WindowLine(cline, e.col, width)
	case OverflowWrap:
		if e.col < 0 || e.col >= len(cline) {
			sstr, cstr, estr = string(cline), " ", ""
		} else {
			sstr, cstr, estr = string(cline[:e.col]), string(cline[e.col]), string(cline[e.col+1:])
		}
	}

	var b strings.Builder
	for _, line := range before {
		b.WriteString(cropLine(line, width))
		b.WriteString("\n")
	}
	b.WriteString(sstr)
	if e.focus {
		b.WriteString(theme.Cursor.Render(cstr))
	} else {
		b.WriteString(cstr)
	}
	b.WriteString(estr)
	for _, line := range after {
		b.WriteString("\n")
		b.WriteString(cropLine(line, width))
	}
	return b.String()
}

func cropLine(line []rune, width int) string {
	if len(line) > width {
		line = line[:width]
	}
	return string(line)
}

// ParsedEdit wraps a single-line editor with a parser; the content renders
// in the invalid style while it does not parse.
type ParsedEdit[T any] struct {
	editor *EditText
	parse  func(string) (T, error)
}

// NewParsedEdit wraps a fresh single-line editor with parse.
func NewParsedEdit[T any](text string, parse func(string) (T, error)) *ParsedEdit[T] {
	return &ParsedEdit[T]{editor: NewEditLine(text), parse: parse}
}

// NewEditInt returns an integer field.
func NewEditInt() *ParsedEdit[int] {
	return NewParsedEdit("", strconv.Atoi)
}

// NewEditFloat returns a float field.
func NewEditFloat() *ParsedEdit[float64] {
	return NewParsedEdit("", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Dispatch forwards to the wrapped editor.
func (p *ParsedEdit[T]) Dispatch(ev Event) error { return p.editor.Dispatch(ev) }

// Value parses the current content.
func (p *ParsedEdit[T]) Value() (T, error) { return p.parse(p.editor.Text()) }

// Result returns the parsed value, or nil while invalid.
func (p *ParsedEdit[T]) Result() any {
	v, err := p.Value()
	if err != nil {
		return nil
	}
	return v
}

// Render marks unparseable content with the invalid style.
func (p *ParsedEdit[T]) Render() string {
	out := p.editor.Render()
	if _, err := p.Value(); err != nil {
		return theme.Invalid.Render(out)
	}
	return out
}
