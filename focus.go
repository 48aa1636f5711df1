package twidge

import "strings"

// FocusGroup owns an ordered list of child widgets and routes events to the
// focused one. Tab and shift+tab cycle focus; the transition is always
// blur-then-focus so no two children are ever focused at once. Children
// that cannot dispatch ignore the synthetic focus/blur events.
type FocusGroup struct {
	children []any
	focus    int
	table    *Table
	childErr error
}

// NewFocusGroup builds a group over a non-empty child list. Child 0 is
// focused immediately, every other child is blurred.
func NewFocusGroup(children ...any) *FocusGroup {
	if len(children) == 0 {
		panic("twidge: FocusGroup requires at least one child")
	}
	g := &FocusGroup{children: children}
	g.table = MustTable([]Binding{
		On(g.Forward, Key("tab")),
		On(g.Back, Key("shift+tab")),
	}, g.toFocused)
	dispatchTo(g.children[0], FocusEvent)
	for _, c := range g.children[1:] {
		dispatchTo(c, BlurEvent)
	}
	return g
}

// Forward moves focus to the next child, wrapping past the end.
func (g *FocusGroup) Forward() {
	g.move((g.focus + 1) % len(g.children))
}

// Back moves focus to the previous child, wrapping before the start.
func (g *FocusGroup) Back() {
	g.move((g.focus + len(g.children) - 1) % len(g.children))
}

func (g *FocusGroup) move(next int) {
	dispatchTo(g.children[g.focus], BlurEvent)
	g.focus = next
	dispatchTo(g.children[g.focus], FocusEvent)
}

// toFocused stashes the child's error; table handlers cannot return one,
// and a failed child dispatch must still surface from Dispatch.
func (g *FocusGroup) toFocused(ev Event) {
	g.childErr = dispatchTo(g.children[g.focus], ev)
}

// Dispatch intercepts the focus-navigation keys and forwards everything
// else to the focused child only, returning the child's dispatch error.
func (g *FocusGroup) Dispatch(ev Event) error {
	g.childErr = nil
	if err := g.table.Dispatch(ev); err != nil {
		return err
	}
	return g.childErr
}

// Focused returns the currently focused child.
func (g *FocusGroup) Focused() any { return g.children[g.focus] }

// Index returns the focus index.
func (g *FocusGroup) Index() int { return g.focus }

// Children returns the child list.
func (g *FocusGroup) Children() []any { return g.children }

// Render stacks the children vertically.
func (g *FocusGroup) Render() string {
	parts := make([]string, len(g.children))
	for i, c := range g.children {
		parts[i] = renderOf(c)
	}
	return strings.Join(parts, "\n")
}

// Result collects each child's result in order.
func (g *FocusGroup) Result() any {
	results := make([]any, len(g.children))
	for i, c := range g.children {
		results[i] = resultOf(c)
	}
	return results
}
