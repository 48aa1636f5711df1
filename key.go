// Package twidge is a small terminal-session engine: it decodes raw input
// bytes into canonical key events, routes them through per-widget handler
// tables with focus-aware composition, and drives a synchronous render loop.
package twidge

import (
	"fmt"
	"unicode/utf8"
)

type eventKind uint8

const (
	kindKey eventKind = iota
	kindText
	kindRaw
)

// Event is one canonical input token. It is either a named key ("left",
// "ctrl+c"), decoded text, or a raw byte payload. Events are comparable and
// are used directly as handler table keys.
type Event struct {
	kind eventKind
	data string
}

// Key returns a named key event.
func Key(name string) Event { return Event{kindKey, name} }

// Text returns a text event.
func Text(s string) Event { return Event{kindText, s} }

// Raw returns an event carrying undecodable bytes.
func Raw(b []byte) Event { return Event{kindRaw, string(b)} }

// IsKey reports whether the event is a named key.
func (e Event) IsKey() bool { return e.kind == kindKey }

// IsText reports whether the event is decoded text.
func (e Event) IsText() bool { return e.kind == kindText }

// IsRaw reports whether the event carries raw bytes.
func (e Event) IsRaw() bool { return e.kind == kindRaw }

// Bytes returns the raw payload of a Raw event, or nil.
func (e Event) Bytes() []byte {
	if e.kind != kindRaw {
		return nil
	}
	return []byte(e.data)
}

// Rune returns the single rune of a one-rune text event.
func (e Event) Rune() (rune, bool) {
	if e.kind != kindText {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(e.data)
	if size == 0 || size != len(e.data) {
		return 0, false
	}
	return r, true
}

// String renders the event for diagnostics.
func (e Event) String() string {
	switch e.kind {
	case kindKey:
		return e.data
	case kindText:
		return fmt.Sprintf("%q", e.data)
	default:
		return fmt.Sprintf("raw(% x)", e.data)
	}
}

// Synthetic events emitted by focus composites.
var (
	FocusEvent = Key("focus")
	BlurEvent  = Key("blur")
)

// specialKeys maps fixed byte sequences to named special keys.
var specialKeys = map[string]string{
	" ":        "space",
	"\t":       "tab",
	"\r":       "enter",
	"\x1b":     "escape",
	"\x7f":     "backspace",
	"\x1b[3~":  "delete",
	"\x1b[A":   "up",
	"\x1b[B":   "down",
	"\x1b[D":   "left",
	"\x1b[C":   "right",
	"\x1b[H":   "home",
	"\x1b[F":   "end",
	"\x1b[Z":   "shift+tab",
	"\x1b[2~":  "insert",
	"\x1b[6~":  "pagedown",
	"\x1b[5~":  "pageup",
}

// functionKeys maps escape sequences to function keys. F1-F4 arrive as SS3
// sequences, the rest as CSI tilde sequences.
var functionKeys = map[string]string{
	"\x1bOP":   "f1",
	"\x1bOQ":   "f2",
	"\x1bOR":   "f3",
	"\x1bOS":   "f4",
	"\x1b[15~": "f5",
	"\x1b[17~": "f6",
	"\x1b[18~": "f7",
	"\x1b[19~": "f8",
	"\x1b[20~": "f9",
	"\x1b[21~": "f10",
	"\x1b[24~": "f12",
}

// ctrlKeys maps control characters and modified arrows to ctrl combinations.
// Note ctrl+i == tab, ctrl+j == newline and ctrl+m == enter; the special
// table wins for those bytes because family precedence favors it.
var ctrlKeys = func() map[string]string {
	m := make(map[string]string, 30)
	for c := byte('a'); c <= 'z'; c++ {
		m[string([]byte{c - 'a' + 1})] = "ctrl+" + string(c)
	}
	m["\x1b[1;5A"] = "ctrl+up"
	m["\x1b[1;5B"] = "ctrl+down"
	m["\x1b[1;5C"] = "ctrl+right"
	m["\x1b[1;5D"] = "ctrl+left"
	return m
}()

// altKeys maps ESC-prefixed letters to alt combinations.
var altKeys = func() map[string]string {
	m := make(map[string]string, 26)
	for c := byte('a'); c <= 'z'; c++ {
		m[string([]byte{0x1b, c})] = "alt+" + string(c)
	}
	return m
}()

// Keymap maps raw byte sequences to key token names. The mapping is
// terminal-emulator specific, so it is injectable rather than fixed: start
// from DefaultKeymap and overlay per-terminal bindings (see LoadKeymap).
type Keymap struct {
	seqs   map[string]string
	maxLen int
}

// DefaultKeymap returns the built-in table: control combinations, alt
// letters, function keys and named special keys. Later families win on
// overlapping sequences.
func DefaultKeymap() *Keymap {
	m := &Keymap{seqs: make(map[string]string, 128)}
	for _, family := range []map[string]string{ctrlKeys, altKeys, functionKeys, specialKeys} {
		for seq, name := range family {
			m.Bind([]byte(seq), name)
		}
	}
	return m
}

// Bind maps a byte sequence to a token name, replacing any prior binding.
func (m *Keymap) Bind(seq []byte, name string) {
	m.seqs[string(seq)] = name
	if len(seq) > m.maxLen {
		m.maxLen = len(seq)
	}
}

// MaxSequenceLen returns the length of the longest bound sequence. The
// session runner sizes its read chunk from this.
func (m *Keymap) MaxSequenceLen() int {
	if m.maxLen < utf8.UTFMax {
		return utf8.UTFMax
	}
	return m.maxLen
}

// Decoder turns raw byte chunks into Events.
type Decoder struct {
	keymap *Keymap
}

// NewDecoder returns a decoder over the given keymap, or the default keymap
// if nil.
func NewDecoder(m *Keymap) *Decoder {
	if m == nil {
		m = DefaultKeymap()
	}
	return &Decoder{keymap: m}
}

// Decode maps one raw read to exactly one Event. It is total: a table hit
// yields a named key, valid UTF-8 yields text, anything else comes back as
// raw bytes. It never fails.
func (d *Decoder) Decode(b []byte) Event {
	if name, ok := d.keymap.seqs[string(b)]; ok {
		return Key(name)
	}
	if utf8.Valid(b) {
		return Text(string(b))
	}
	return Raw(b)
}
