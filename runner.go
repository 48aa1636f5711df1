package twidge

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrAborted is returned by Runner.Run after a hard stop, e.g. an abort
// watcher firing. The terminal is restored before Run returns.
var ErrAborted = errors.New("session aborted")

// Runner drives the read → decode → dispatch → render loop for one widget
// tree. It is single-threaded and cooperative: the only suspension point is
// the blocking input read, and a handler always runs to completion before
// the next read. The runner exclusively owns the input stream and the
// terminal's raw mode for its running lifetime.
type Runner struct {
	root    any
	in      io.Reader
	decoder *Decoder
	display *Display
	onError func(error) error

	running bool
	stopped bool
	aborted bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInput reads events from r instead of stdin. Raw mode is only engaged
// when the input is a real terminal.
func WithInput(r io.Reader) RunnerOption {
	return func(ru *Runner) { ru.in = r }
}

// WithKeymap decodes input against a custom keymap.
func WithKeymap(m *Keymap) RunnerOption {
	return func(ru *Runner) { ru.decoder = NewDecoder(m) }
}

// WithDisplay paints frames on a custom display.
func WithDisplay(d *Display) RunnerOption {
	return func(ru *Runner) { ru.display = d }
}

// WithErrorFilter installs a filter for dispatch errors. Returning nil
// resumes the loop; returning an error stops the session with it. The
// default stops on the first dispatch error.
func WithErrorFilter(fn func(error) error) RunnerOption {
	return func(ru *Runner) { ru.onError = fn }
}

// NewRunner builds a runner for the given root widget.
func NewRunner(root any, opts ...RunnerOption) *Runner {
	ru := &Runner{
		root:    root,
		in:      os.Stdin,
		decoder: NewDecoder(nil),
		onError: func(err error) error { return err },
	}
	for _, opt := range opts {
		opt(ru)
	}
	if ru.display == nil {
		ru.display = NewDisplay(nil)
	}
	return ru
}

// Run blocks until the widget tree stops the session, input is exhausted,
// or a dispatch error is surfaced. Raw mode is restored and the display
// closed on every exit path, including a panicking handler.
func (ru *Runner) Run() error {
	if f, ok := ru.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		restore, err := enterRaw(int(f.Fd()))
		if err != nil {
			return err
		}
		defer restore()
	}
	defer ru.display.Close()

	ru.running = true
	ru.stopped = false
	defer func() { ru.running = false }()

	ru.paint()
	buf := make([]byte, ru.decoder.keymap.MaxSequenceLen())
	for !ru.stopped {
		n, err := ru.in.Read(buf)
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := dispatchTo(ru.root, ru.decoder.Decode(buf[:n])); err != nil {
			if err = ru.onError(err); err != nil {
				return err
			}
		}
		ru.paint()
	}
	if ru.aborted {
		return ErrAborted
	}
	return nil
}

func (ru *Runner) paint() {
	w, h := ru.display.Size()
	ru.display.Paint(renderSized(ru.root, w, h))
}

// Stop requests a graceful stop; the loop observes it before the next read.
func (ru *Runner) Stop() { ru.stopped = true }

// Abort requests a hard stop; Run returns ErrAborted after restoring the
// terminal.
func (ru *Runner) Abort() {
	ru.stopped = true
	ru.aborted = true
}

// Running reports whether the loop is active.
func (ru *Runner) Running() bool { return ru.running }

// Result returns the root widget's result.
func (ru *Runner) Result() any { return resultOf(ru.root) }
