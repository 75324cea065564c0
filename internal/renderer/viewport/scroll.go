package viewport

// Scroll recomputes rx from cx and adjusts the offsets so the cursor is
// inside the window. It is called once per frame.
func (v *Viewport) Scroll(lines Lines) {
	v.rx = 0
	if v.cy < lines.NumRows() {
		v.rx = lines.CxToRx(v.cy, v.cx)
	}

	if v.cy < v.rowOff {
		v.rowOff = v.cy
	}
	if v.cy >= v.rowOff+v.rows {
		v.rowOff = v.cy - v.rows + 1
	}
	if v.rx < v.colOff {
		v.colOff = v.rx
	}
	if v.rx >= v.colOff+v.cols {
		v.colOff = v.rx - v.cols + 1
	}
}
