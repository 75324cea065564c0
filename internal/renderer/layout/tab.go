// Package layout maps a row's raw characters to their display form.
//
// Rows are byte sequences with one byte per column. The only byte whose
// display width differs from one is the tab, which advances to the next
// multiple of the tab stop.
package layout

// DefaultTabStop is the tab stop used when none is configured.
const DefaultTabStop = 8

// TabExpander provides tab expansion and column mapping.
type TabExpander struct {
	tabStop int
}

// NewTabExpander creates a tab expander with the given tab stop.
func NewTabExpander(tabStop int) *TabExpander {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &TabExpander{tabStop: tabStop}
}

// DefaultTabExpander returns a tab expander with the default tab stop of 8.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}

// TabStop returns the current tab stop.
func (t *TabExpander) TabStop() int {
	return t.tabStop
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.TabStopOffset(col)
}

// TabStopOffset returns how many spaces a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabStop - (col % t.tabStop)
}

// advance returns the visual column reached after drawing c at col.
func (t *TabExpander) advance(c byte, col int) int {
	if c == '\t' {
		return t.NextTabStop(col)
	}
	return col + 1
}

// Project returns the display form of chars: every tab is replaced by
// enough spaces to reach the next tab stop, all other bytes are copied.
// The result is always a fresh slice.
func (t *TabExpander) Project(chars []byte) []byte {
	tabs := 0
	for _, c := range chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(chars)+tabs*(t.tabStop-1))
	for _, c := range chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%t.tabStop != 0 {
			render = append(render, ' ')
		}
	}
	return render
}

// ExpandedWidth returns the visual width of chars.
func (t *TabExpander) ExpandedWidth(chars []byte) int {
	return t.CxToRx(chars, len(chars))
}

// CxToRx converts a logical column into a visual column: the summed
// advance of every character before cx.
func (t *TabExpander) CxToRx(chars []byte, cx int) int {
	if cx > len(chars) {
		cx = len(chars)
	}
	rx := 0
	for _, c := range chars[:max(cx, 0)] {
		rx = t.advance(c, rx)
	}
	return rx
}

// RxToCx converts a visual column into a logical column: the first
// column whose cumulative width exceeds rx, or len(chars) when none does.
func (t *TabExpander) RxToCx(chars []byte, rx int) int {
	cur := 0
	for cx, c := range chars {
		cur = t.advance(c, cur)
		if cur > rx {
			return cx
		}
	}
	return len(chars)
}
