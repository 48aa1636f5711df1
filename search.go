package twidge

import (
	"regexp"
	"strings"
)

// Searcher incrementally filters options by a typed query. Each typed
// character narrows the current subset; backspace re-filters from the full
// list; ctrl+d resets. The query is a case-insensitive regular expression,
// treated literally while it does not compile.
type Searcher struct {
	options []string
	query   string
	subset  []string
	table   *Table
}

// NewSearcher builds a searcher over options.
func NewSearcher(options []string) *Searcher {
	s := &Searcher{options: options, subset: options}
	s.table = MustTable([]Binding{
		On(s.reset, Key("ctrl+d")),
		On(s.backspace, Key("backspace")),
		On(func() {}, FocusEvent, BlurEvent),
	}, s.typed)
	return s
}

// Dispatch routes one event.
func (s *Searcher) Dispatch(ev Event) error { return s.table.Dispatch(ev) }

func (s *Searcher) reset() {
	s.query = ""
	s.subset = s.options
}

func (s *Searcher) backspace() {
	if s.query != "" {
		s.query = s.query[:len(s.query)-1]
	}
	s.subset = filterMatch(s.options, s.query)
}

func (s *Searcher) typed(ev Event) {
	r, ok := ev.Rune()
	if !ok {
		return
	}
	s.query += string(r)
	s.subset = filterMatch(s.subset, s.query)
}

func filterMatch(options []string, query string) []string {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}
	var out []string
	for _, o := range options {
		if re.MatchString(o) {
			out = append(out, o)
		}
	}
	return out
}

// Render shows the query over the matching subset.
func (s *Searcher) Render() string {
	content := "No matches."
	if len(s.subset) > 0 {
		content = strings.Join(s.subset, "\n")
	}
	return theme.Query.Render(s.query) + "\n" + content
}

// Result returns the matching subset.
func (s *Searcher) Result() any { return s.subset }

// Matches returns the matching subset.
func (s *Searcher) Matches() []string { return s.subset }

var numSeq = regexp.MustCompile(`(\d+)`)

// Indexer picks options by typing their 1-based numbers, separated by any
// non-digit. "3 1" selects the third then the first option.
type Indexer struct {
	options []string
	query   string
	table   *Table
}

// NewIndexer builds an indexer over options.
func NewIndexer(options []string) *Indexer {
	x := &Indexer{options: options}
	x.table = MustTable([]Binding{
		On(func() { x.query = "" }, Key("ctrl+d")),
		On(func() { x.typed(Text(" ")) }, Key("space")),
		On(x.backspace, Key("backspace")),
		On(func() {}, FocusEvent, BlurEvent),
	}, x.typed)
	return x
}

// Dispatch routes one event.
func (x *Indexer) Dispatch(ev Event) error { return x.table.Dispatch(ev) }

func (x *Indexer) backspace() {
	if x.query != "" {
		x.query = x.query[:len(x.query)-1]
	}
}

func (x *Indexer) typed(ev Event) {
	if r, ok := ev.Rune(); ok {
		x.query += string(r)
	}
}

// Selected resolves the query to options, dropping out-of-range numbers.
func (x *Indexer) Selected() []string {
	var out []string
	for _, m := range numSeq.FindAllString(x.query, -1) {
		i := 0
		for _, c := range m {
			i = i*10 + int(c-'0')
		}
		if i >= 1 && i <= len(x.options) {
			out = append(out, x.options[i-1])
		}
	}
	return out
}

// Result returns the selected options in query order.
func (x *Indexer) Result() any { return x.Selected() }

// Render lists numbered options, highlighting the selected ones.
func (x *Indexer) Render() string {
	selected := make(map[string]bool)
	for _, o := range x.Selected() {
		selected[o] = true
	}
	var b strings.Builder
	b.WriteString(theme.Query.Render(x.query))
	for i, o := range x.options {
		b.WriteString("\n")
		b.WriteString(itoa(i + 1))
		b.WriteString(" ")
		if selected[o] {
			b.WriteString(theme.Selected.Render(o))
		} else {
			b.WriteString(o)
		}
	}
	return b.String()
}

// Selector multi-selects from a list: tab/shift+tab move the highlight,
// space toggles the highlighted option, enter selects it and submits.
type Selector struct {
	options  []string
	focus    int
	selected map[int]bool
	onSubmit func()
	table    *Table
}

// NewSelector builds a selector; submit (may be nil) runs on enter.
// Panics on an empty option list.
func NewSelector(submit func(), options ...string) *Selector {
	if len(options) == 0 {
		panic("twidge: Selector requires at least one option")
	}
	s := &Selector{options: options, selected: make(map[int]bool), onSubmit: submit}
	s.table = MustTable([]Binding{
		On(func() { s.focus = (s.focus + 1) % len(s.options) }, Key("tab")),
		On(func() { s.focus = (s.focus + len(s.options) - 1) % len(s.options) }, Key("shift+tab")),
		On(func() { s.selected[s.focus] = !s.selected[s.focus] }, Key("space")),
		On(s.submit, Key("enter")),
		On(func() {}, FocusEvent, BlurEvent),
	}, func(Event) {})
	return s
}

func (s *Selector) submit() {
	s.selected[s.focus] = true
	if s.onSubmit != nil {
		s.onSubmit()
	}
}

// Dispatch routes one event.
func (s *Selector) Dispatch(ev Event) error { return s.table.Dispatch(ev) }

// Result returns the selected options in list order.
func (s *Selector) Result() any {
	var out []string
	for i, o := range s.options {
		if s.selected[i] {
			out = append(out, o)
		}
	}
	return out
}

// Render lists the options, marking the highlight and selections.
func (s *Selector) Render() string {
	var b strings.Builder
	for i, o := range s.options {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if i == s.focus {
			marker = "> "
		}
		b.WriteString(marker)
		if s.selected[i] {
			b.WriteString(theme.Selected.Render(o))
		} else {
			b.WriteString(o)
		}
	}
	return b.String()
}
