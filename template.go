package twidge

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldPattern matches template placeholders:
//
//	{name}              free-text field
//	{name:str(x)}       free-text field with default x
//	{name:opt(a|b|c)}   cycler over fixed choices
//
// The name is optional.
var fieldPattern = regexp.MustCompile(`\{([^\d\W]\w*)?(?::([^{}]*))?\}`)

// Cycler rotates through fixed options; any key advances it while focused.
type Cycler struct {
	options []string
	index   int
	focus   bool
	table   *Table
}

// NewCycler builds a cycler. Panics on an empty option list.
func NewCycler(options ...string) *Cycler {
	if len(options) == 0 {
		panic("twidge: Cycler requires at least one option")
	}
	c := &Cycler{options: options}
	c.table = MustTable([]Binding{
		On(func() { c.focus = true }, FocusEvent),
		On(func() { c.focus = false }, BlurEvent),
	}, func(Event) { c.index = (c.index + 1) % len(c.options) })
	return c
}

// Dispatch routes one event.
func (c *Cycler) Dispatch(ev Event) error { return c.table.Dispatch(ev) }

// Render shows the current option, styled while focused.
func (c *Cycler) Render() string {
	if c.focus {
		return theme.Focus.Render(c.options[c.index])
	}
	return c.options[c.index]
}

// Result returns the current option.
func (c *Cycler) Result() any { return c.options[c.index] }

// EditTemplate turns a text with placeholders into an inline form: each
// placeholder becomes an editable field, tab/shift+tab cycle between them,
// and Result substitutes the field values back into the text.
type EditTemplate struct {
	content []any // string literals and field widgets, in order
	fields  []any
	group   *FocusGroup
}

// NewEditTemplate parses source into literals and fields. It fails when a
// placeholder literal is unparseable or the template has no fields.
func NewEditTemplate(source string) (*EditTemplate, error) {
	t := &EditTemplate{}
	last := 0
	for _, m := range fieldPattern.FindAllStringSubmatchIndex(source, -1) {
		t.content = append(t.content, source[last:m[0]])
		literal := ""
		if m[4] >= 0 {
			literal = source[m[4]:m[5]]
		}
		field, err := parseField(literal)
		if err != nil {
			return nil, fmt.Errorf("placeholder %q: %w", source[m[0]:m[1]], err)
		}
		t.content = append(t.content, field)
		t.fields = append(t.fields, field)
		last = m[1]
	}
	if last < len(source) {
		t.content = append(t.content, source[last:])
	}
	if len(t.fields) == 0 {
		return nil, fmt.Errorf("template has no fields")
	}
	t.group = NewFocusGroup(t.fields...)
	return t, nil
}

// parseField resolves a placeholder literal to a widget.
func parseField(literal string) (any, error) {
	switch {
	case literal == "":
		return NewEditLine(""), nil
	case strings.HasPrefix(literal, "str(") && strings.HasSuffix(literal, ")"):
		return NewEditLine(literal[4 : len(literal)-1]), nil
	case strings.HasPrefix(literal, "opt(") && strings.HasSuffix(literal, ")"):
		options := strings.Split(literal[4:len(literal)-1], "|")
		if len(options) == 1 && options[0] == "" {
			return nil, fmt.Errorf("opt() needs at least one choice")
		}
		return NewCycler(options...), nil
	default:
		return nil, fmt.Errorf("unknown field literal %q", literal)
	}
}

// Dispatch intercepts focus navigation, forwarding the rest to the focused
// field.
func (t *EditTemplate) Dispatch(ev Event) error { return t.group.Dispatch(ev) }

// Render concatenates literals and field renders inline.
func (t *EditTemplate) Render() string {
	var b strings.Builder
	for _, c := range t.content {
		if s, ok := c.(string); ok {
			b.WriteString(s)
		} else {
			b.WriteString(renderOf(c))
		}
	}
	return b.String()
}

// Result substitutes the field values back into the source text.
func (t *EditTemplate) Result() any {
	var b strings.Builder
	for _, c := range t.content {
		if s, ok := c.(string); ok {
			b.WriteString(s)
		} else {
			b.WriteString(fmt.Sprint(resultOf(c)))
		}
	}
	return b.String()
}
