package twidge

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Display paints one frame per loop iteration, inline in the normal
// terminal flow. Each Paint clears the previous frame's region and redraws;
// Close erases the output entirely so the session is transient. The core
// only hands it an opaque display value and never reads anything back.
type Display struct {
	w       io.Writer
	fd      int // -1 when not backed by a terminal
	lines   int // lines occupied by the previous frame
	painted bool
}

// NewDisplay returns a display writing to w, or os.Stdout when nil.
func NewDisplay(w io.Writer) *Display {
	if w == nil {
		w = os.Stdout
	}
	fd := -1
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Display{w: w, fd: fd}
}

// Size returns the terminal dimensions, with an 80x24 fallback for
// non-terminal writers.
func (d *Display) Size() (width, height int) {
	if d.fd >= 0 {
		if w, h, err := terminalSize(d.fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return 80, 24
}

// Paint redraws the frame, replacing the previous one. Lines are cropped to
// the terminal width by display cells so cursor movement stays in step with
// what was actually written.
func (d *Display) Paint(frame string) {
	width, _ := d.Size()

	var b strings.Builder
	if !d.painted {
		b.WriteString("\x1b[?25l") // hide cursor for the session
		d.painted = true
	}
	// return to the first line of the previous frame
	b.WriteString("\r")
	if d.lines > 1 {
		b.WriteString("\x1b[")
		b.WriteString(itoa(d.lines - 1))
		b.WriteString("A")
	}

	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		b.WriteString("\x1b[2K")
		b.WriteString(ansi.Truncate(line, width, ""))
		b.WriteString("\x1b[0m")
		if i < len(lines)-1 {
			b.WriteString("\r\n")
		}
	}
	// wipe any leftover lines from a taller previous frame
	b.WriteString("\x1b[J")

	io.WriteString(d.w, b.String())
	d.lines = len(lines)
}

// Close erases the painted region and restores the cursor. Safe to call
// whether or not anything was painted.
func (d *Display) Close() {
	if !d.painted {
		return
	}
	var b strings.Builder
	b.WriteString("\r")
	if d.lines > 1 {
		b.WriteString("\x1b[")
		b.WriteString(itoa(d.lines - 1))
		b.WriteString("A")
	}
	b.WriteString("\x1b[J")
	b.WriteString("\x1b[?25h")
	io.WriteString(d.w, b.String())
	d.lines = 0
	d.painted = false
}

// itoa formats a small positive integer without fmt.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return string(scratch[i:])
}
