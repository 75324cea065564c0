// Package viewport tracks the cursor and the scrolled window over a
// document.
//
// The cursor has a logical column (cx, an index into the row's raw
// characters) and a visual column (rx, a column of the row's display form).
// rx is derived from cx by Scroll and never set on its own.
package viewport

// Lines is the read-only view of a document the viewport needs.
type Lines interface {
	// NumRows returns the number of rows.
	NumRows() int
	// RowLen returns the number of raw characters of a row, 0 past the end.
	RowLen(at int) int
	// CxToRx converts a logical column of a row into a visual column.
	CxToRx(at, cx int) int
}

// Viewport is the cursor plus the visible window of rows and columns.
type Viewport struct {
	cx, cy int
	rx     int
	rowOff int
	colOff int
	rows   int
	cols   int
}

// New creates a viewport showing rows x cols cells.
// Both dimensions are clamped to a minimum of 1.
func New(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// Resize changes the visible size. The offsets are fixed up by the next
// Scroll.
func (v *Viewport) Resize(rows, cols int) {
	v.rows = max(rows, 1)
	v.cols = max(cols, 1)
}

// Rows returns the number of visible text rows.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the number of visible columns.
func (v *Viewport) Cols() int { return v.cols }

// Cursor returns the logical cursor position.
func (v *Viewport) Cursor() (cx, cy int) { return v.cx, v.cy }

// SetCursor moves the cursor. Callers are responsible for passing a
// position inside the document.
func (v *Viewport) SetCursor(cx, cy int) {
	v.cx = max(cx, 0)
	v.cy = max(cy, 0)
}

// Rx returns the visual cursor column computed by the last Scroll.
func (v *Viewport) Rx() int { return v.rx }

// RowOffset returns the first visible row.
func (v *Viewport) RowOffset() int { return v.rowOff }

// ColOffset returns the first visible visual column.
func (v *Viewport) ColOffset() int { return v.colOff }

// SetRowOffset sets the first visible row. Scroll pulls it back so the
// cursor stays visible; setting it past the cursor therefore makes the
// cursor row the top row of the next frame.
func (v *Viewport) SetRowOffset(off int) {
	v.rowOff = max(off, 0)
}

// ScreenCursor returns the cursor position relative to the window.
func (v *Viewport) ScreenCursor() (x, y int) {
	return v.rx - v.colOff, v.cy - v.rowOff
}

// State is a saved cursor and scroll position.
type State struct {
	Cx, Cy         int
	RowOff, ColOff int
}

// Save returns the current cursor and scroll position.
func (v *Viewport) Save() State {
	return State{Cx: v.cx, Cy: v.cy, RowOff: v.rowOff, ColOff: v.colOff}
}

// Restore returns to a saved position.
func (v *Viewport) Restore(s State) {
	v.cx, v.cy = s.Cx, s.Cy
	v.rowOff, v.colOff = s.RowOff, s.ColOff
}
