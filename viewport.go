package twidge

// Window slices content into (start, mid, end) around the element at
// center, with len(start)+1+len(end) <= width. The cursor sits roughly
// mid-window; near a content boundary the window borrows the unused
// half-width from the far side instead of leaving it empty. center must be
// a valid index.
func Window[E any](content []E, center, width int) (start []E, mid E, end []E) {
	avail := width - 1
	lenBefore := center
	lenAfter := len(content) - center - 1

	// offset from center; ceil/floor split accounts for odd widths
	ostart := (avail+1)/2 + max(0, avail/2-lenAfter)
	oend := avail/2 + max(0, (avail+1)/2-lenBefore)

	istart := max(0, center-ostart)
	iend := min(center+1+oend, len(content))

	return content[istart:center], content[center], content[center+1 : iend]
}

// WindowLine windows a rune row around a cursor column, handling the
// append position (cursor == len): the window fills from the left and the
// cursor cell renders as a trailing space.
func WindowLine(line []rune, cursor, width int) (start, mid, end string) {
	if cursor < 0 || cursor >= len(line) {
		from := max(0, cursor-(width-1))
		to := min(cursor, len(line))
		return string(line[from:to]), " ", ""
	}
	s, m, e := Window(line, cursor, width)
	return string(s), string(m), string(e)
}
