package twidge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EditDict is a form: one single-line editor per key, cycled with
// tab/shift+tab through a focus group. Result is the key→text map.
type EditDict struct {
	keys    []string
	editors []*EditText
	group   *FocusGroup
}

// NewEditDict builds a form with empty fields for each key.
func NewEditDict(keys []string) *EditDict {
	return NewEditDictValues(keys, nil)
}

// NewEditDictValues builds a form with initial values. Panics on an empty
// key list.
func NewEditDictValues(keys []string, values map[string]string) *EditDict {
	if len(keys) == 0 {
		panic("twidge: EditDict requires at least one key")
	}
	d := &EditDict{keys: keys}
	children := make([]any, len(keys))
	for i, k := range keys {
		e := NewEditLine(values[k])
		d.editors = append(d.editors, e)
		children[i] = e
	}
	d.group = NewFocusGroup(children...)
	return d
}

// Dispatch forwards to the focus group.
func (d *EditDict) Dispatch(ev Event) error { return d.group.Dispatch(ev) }

// Render lays the fields out as a label/editor grid.
func (d *EditDict) Render() string {
	width := 0
	for _, k := range d.keys {
		width = max(width, lipgloss.Width(k))
	}
	rows := make([]string, len(d.keys))
	for i, k := range d.keys {
		label := theme.Label.Render(k + strings.Repeat(" ", width-lipgloss.Width(k)))
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label, " ", d.editors[i].Render())
	}
	return strings.Join(rows, "\n")
}

// Result returns the key→text map.
func (d *EditDict) Result() any {
	out := make(map[string]string, len(d.keys))
	for i, k := range d.keys {
		out[k] = d.editors[i].Text()
	}
	return out
}

// Values returns the key→text map with its concrete type.
func (d *EditDict) Values() map[string]string {
	return d.Result().(map[string]string)
}
