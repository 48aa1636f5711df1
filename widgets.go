package twidge

import "github.com/charmbracelet/lipgloss"

// Toggle is a focusable boolean. Space flips it; enter and anything else
// leave it alone.
type Toggle struct {
	value   bool
	onTrue  string
	onFalse string
	focus   bool
	table   *Table
}

// NewToggle returns a toggle with "True"/"False" labels.
func NewToggle(value bool) *Toggle {
	return NewToggleLabels(value, "True", "False")
}

// NewToggleLabels returns a toggle with custom labels.
func NewToggleLabels(value bool, onTrue, onFalse string) *Toggle {
	t := &Toggle{value: value, onTrue: onTrue, onFalse: onFalse, focus: true}
	t.table = MustTable([]Binding{
		On(func() { t.value = !t.value }, Key("space")),
		On(func() { t.focus = true }, FocusEvent),
		On(func() { t.focus = false }, BlurEvent),
	}, func(Event) {})
	return t
}

// Dispatch routes one event.
func (t *Toggle) Dispatch(ev Event) error { return t.table.Dispatch(ev) }

// Render shows the current label, styled while focused.
func (t *Toggle) Render() string {
	label := t.onFalse
	if t.value {
		label = t.onTrue
	}
	if t.focus {
		return theme.Focus.Render(label)
	}
	return label
}

// Result returns the boolean value.
func (t *Toggle) Result() any { return t.value }

// Value returns the boolean value.
func (t *Toggle) Value() bool { return t.value }

// Button invokes a target on enter and swallows everything else.
type Button struct {
	content string
	target  func()
	focus   bool
	table   *Table
}

// NewButton returns a button labelled content that calls target on enter.
func NewButton(content string, target func()) *Button {
	b := &Button{content: content, target: target, focus: true}
	b.table = MustTable([]Binding{
		On(func() { b.target() }, Key("enter")),
		On(func() { b.focus = true }, FocusEvent),
		On(func() { b.focus = false }, BlurEvent),
	}, func(Event) {})
	return b
}

// Dispatch routes one event.
func (b *Button) Dispatch(ev Event) error { return b.table.Dispatch(ev) }

// Render frames the label, highlighted while focused.
func (b *Button) Render() string {
	if b.focus {
		return theme.FrameHot.Render(b.content)
	}
	return theme.Frame.Render(b.content)
}

// Framed draws a border around any content and forwards events to it.
type Framed struct {
	content any
}

// NewFramed wraps content in a border.
func NewFramed(content any) *Framed { return &Framed{content: content} }

// Dispatch passes every event through to the content.
func (f *Framed) Dispatch(ev Event) error { return dispatchTo(f.content, ev) }

// Render draws the border.
func (f *Framed) Render() string { return theme.Frame.Render(renderOf(f.content)) }

// Result passes the content's result through.
func (f *Framed) Result() any { return resultOf(f.content) }

// FocusFramed adds a focus-responsive frame to a widget that would
// otherwise not show focus.
type FocusFramed struct {
	content any
	focus   bool
	table   *Table
}

// NewFocusFramed wraps content in a frame that lights up on focus.
func NewFocusFramed(content any) *FocusFramed {
	f := &FocusFramed{content: content, focus: true}
	f.table = MustTable([]Binding{
		On(func() { f.focus = true }, FocusEvent),
		On(func() { f.focus = false }, BlurEvent),
	}, func(ev Event) { dispatchTo(f.content, ev) })
	return f
}

// Dispatch tracks focus and forwards everything else.
func (f *FocusFramed) Dispatch(ev Event) error { return f.table.Dispatch(ev) }

// Render draws the frame in the focused or blurred style.
func (f *FocusFramed) Render() string {
	if f.focus {
		return theme.FrameHot.Render(renderOf(f.content))
	}
	return theme.Frame.Render(renderOf(f.content))
}

// Result passes the content's result through.
func (f *FocusFramed) Result() any { return resultOf(f.content) }

// Focused reports the frame's focus state.
func (f *FocusFramed) Focused() bool { return f.focus }

// Labelled pairs a styled label with a widget; events go to the widget.
type Labelled struct {
	label  string
	widget any
}

// NewLabelled attaches label to widget.
func NewLabelled(label string, widget any) *Labelled {
	return &Labelled{label: label, widget: widget}
}

// Dispatch forwards to the wrapped widget.
func (l *Labelled) Dispatch(ev Event) error { return dispatchTo(l.widget, ev) }

// Render puts the label and widget side by side.
func (l *Labelled) Render() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Label.Render(l.label)+" ", renderOf(l.widget))
}

// Result passes the widget's result through.
func (l *Labelled) Result() any { return resultOf(l.widget) }

// Menu is a focus group over options; enter or space submits the focused
// one. It layers its submit bindings onto the group table after
// construction.
type Menu struct {
	*FocusGroup
	options  []string
	onSubmit func()
}

// NewMenu builds a menu over the options; submit runs when one is chosen
// (typically the runner's Stop). Panics on an empty option list.
func NewMenu(submit func(), options ...string) *Menu {
	children := make([]any, len(options))
	for i, o := range options {
		children[i] = NewFocusFramed(o)
	}
	m := &Menu{FocusGroup: NewFocusGroup(children...), options: options, onSubmit: submit}
	if err := m.table.Update([]Binding{
		On(m.submit, Key("enter"), Key("space")),
	}, nil); err != nil {
		panic("twidge: " + err.Error())
	}
	return m
}

func (m *Menu) submit() {
	if m.onSubmit != nil {
		m.onSubmit()
	}
}

// Result returns the focused option.
func (m *Menu) Result() any { return m.options[m.Index()] }
