package viewport

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Move moves the cursor one step. Left at column 0 goes to the end of the
// previous row, right at the end of a row goes to the start of the next.
// The cursor may rest on the row one past the last. After the move cx is
// clamped to the length of the destination row.
func (v *Viewport) Move(lines Lines, dir Direction) {
	numRows := lines.NumRows()

	switch dir {
	case Left:
		if v.cx > 0 {
			v.cx--
		} else if v.cy > 0 {
			v.cy--
			v.cx = lines.RowLen(v.cy)
		}
	case Right:
		if v.cy < numRows {
			if v.cx < lines.RowLen(v.cy) {
				v.cx++
			} else {
				v.cy++
				v.cx = 0
			}
		}
	case Up:
		if v.cy > 0 {
			v.cy--
		}
	case Down:
		if v.cy < numRows {
			v.cy++
		}
	}

	v.cx = min(v.cx, lines.RowLen(v.cy))
}

// PageUp moves the cursor to the top of the window, then up one window
// height, one row at a time.
func (v *Viewport) PageUp(lines Lines) {
	v.cy = v.rowOff
	for range v.rows {
		v.Move(lines, Up)
	}
}

// PageDown moves the cursor to the bottom of the window, then down one
// window height, one row at a time.
func (v *Viewport) PageDown(lines Lines) {
	v.cy = min(v.rowOff+v.rows-1, lines.NumRows())
	for range v.rows {
		v.Move(lines, Down)
	}
}

// Home moves the cursor to the start of the row.
func (v *Viewport) Home() {
	v.cx = 0
}

// End moves the cursor to the end of the row.
func (v *Viewport) End(lines Lines) {
	if v.cy < lines.NumRows() {
		v.cx = lines.RowLen(v.cy)
	}
}
