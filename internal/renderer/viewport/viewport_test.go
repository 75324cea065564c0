package viewport

import (
	"testing"

	"github.com/dshills/pickle/internal/renderer/layout"
)

type fakeLines struct {
	rows []string
	tabs *layout.TabExpander
}

func newLines(rows ...string) *fakeLines {
	return &fakeLines{rows: rows, tabs: layout.DefaultTabExpander()}
}

func (f *fakeLines) NumRows() int { return len(f.rows) }

func (f *fakeLines) RowLen(at int) int {
	if at < 0 || at >= len(f.rows) {
		return 0
	}
	return len(f.rows[at])
}

func (f *fakeLines) CxToRx(at, cx int) int {
	return f.tabs.CxToRx([]byte(f.rows[at]), cx)
}

func TestNew(t *testing.T) {
	v := New(0, -3)
	if v.Rows() != 1 || v.Cols() != 1 {
		t.Errorf("size = %dx%d, want 1x1", v.Rows(), v.Cols())
	}
	cx, cy := v.Cursor()
	if cx != 0 || cy != 0 || v.RowOffset() != 0 || v.ColOffset() != 0 {
		t.Error("new viewport should start at the origin")
	}
}

func TestScrollVertical(t *testing.T) {
	lines := newLines(make([]string, 100)...)
	v := New(10, 80)

	v.SetCursor(0, 15)
	v.Scroll(lines)
	if v.RowOffset() != 6 {
		t.Errorf("RowOffset = %d, want 6", v.RowOffset())
	}

	v.SetCursor(0, 3)
	v.Scroll(lines)
	if v.RowOffset() != 3 {
		t.Errorf("RowOffset = %d, want 3", v.RowOffset())
	}

	v.SetCursor(0, 12)
	v.Scroll(lines)
	if v.RowOffset() != 3 {
		t.Errorf("cursor inside window should not scroll, RowOffset = %d", v.RowOffset())
	}
	_, y := v.ScreenCursor()
	if y != 9 {
		t.Errorf("screen y = %d, want 9", y)
	}
}

func TestScrollHorizontalUsesRenderColumn(t *testing.T) {
	lines := newLines("\t\t\tx")
	v := New(5, 10)

	v.SetCursor(3, 0)
	v.Scroll(lines)
	if v.Rx() != 24 {
		t.Fatalf("Rx = %d, want 24", v.Rx())
	}
	if v.ColOffset() != 15 {
		t.Errorf("ColOffset = %d, want 15", v.ColOffset())
	}
	x, _ := v.ScreenCursor()
	if x != 9 {
		t.Errorf("screen x = %d, want 9", x)
	}

	v.SetCursor(0, 0)
	v.Scroll(lines)
	if v.ColOffset() != 0 {
		t.Errorf("ColOffset = %d, want 0", v.ColOffset())
	}
}

func TestScrollPastLastRow(t *testing.T) {
	lines := newLines("abc")
	v := New(5, 10)
	v.SetCursor(0, 1)
	v.Scroll(lines)
	if v.Rx() != 0 {
		t.Errorf("Rx past the last row = %d, want 0", v.Rx())
	}
}

func TestMoveWraps(t *testing.T) {
	lines := newLines("abc", "de")
	v := New(10, 80)

	v.Move(lines, Left)
	if cx, cy := v.Cursor(); cx != 0 || cy != 0 {
		t.Errorf("left at origin moved to %d,%d", cx, cy)
	}

	v.SetCursor(3, 0)
	v.Move(lines, Right)
	if cx, cy := v.Cursor(); cx != 0 || cy != 1 {
		t.Errorf("right at row end = %d,%d, want 0,1", cx, cy)
	}

	v.Move(lines, Left)
	if cx, cy := v.Cursor(); cx != 3 || cy != 0 {
		t.Errorf("left at column 0 = %d,%d, want 3,0", cx, cy)
	}
}

func TestMoveVerticalClampsColumn(t *testing.T) {
	lines := newLines("abcdef", "ab")
	v := New(10, 80)

	v.SetCursor(5, 0)
	v.Move(lines, Down)
	if cx, cy := v.Cursor(); cx != 2 || cy != 1 {
		t.Errorf("down = %d,%d, want 2,1", cx, cy)
	}

	v.Move(lines, Down)
	if cx, cy := v.Cursor(); cx != 0 || cy != 2 {
		t.Errorf("down onto the row past the end = %d,%d, want 0,2", cx, cy)
	}

	v.Move(lines, Down)
	if _, cy := v.Cursor(); cy != 2 {
		t.Errorf("down past the end moved to %d", cy)
	}

	v.Move(lines, Right)
	if cx, cy := v.Cursor(); cx != 0 || cy != 2 {
		t.Errorf("right past the end moved to %d,%d", cx, cy)
	}

	v.Move(lines, Up)
	v.Move(lines, Up)
	v.Move(lines, Up)
	if _, cy := v.Cursor(); cy != 0 {
		t.Errorf("up should stop at row 0, got %d", cy)
	}
}

func TestPageDownUp(t *testing.T) {
	lines := newLines(make([]string, 50)...)
	v := New(10, 80)

	v.PageDown(lines)
	if _, cy := v.Cursor(); cy != 19 {
		t.Errorf("PageDown cy = %d, want 19", cy)
	}
	v.Scroll(lines)
	if v.RowOffset() != 10 {
		t.Errorf("RowOffset = %d, want 10", v.RowOffset())
	}

	v.PageUp(lines)
	if _, cy := v.Cursor(); cy != 0 {
		t.Errorf("PageUp cy = %d, want 0", cy)
	}

	short := newLines("a", "b")
	v = New(10, 80)
	v.PageDown(short)
	if _, cy := v.Cursor(); cy != 2 {
		t.Errorf("PageDown on a short document cy = %d, want 2", cy)
	}
}

func TestHomeEnd(t *testing.T) {
	lines := newLines("hello")
	v := New(10, 80)

	v.End(lines)
	if cx, _ := v.Cursor(); cx != 5 {
		t.Errorf("End cx = %d, want 5", cx)
	}
	v.Home()
	if cx, _ := v.Cursor(); cx != 0 {
		t.Errorf("Home cx = %d, want 0", cx)
	}

	v.SetCursor(0, 1)
	v.End(lines)
	if cx, _ := v.Cursor(); cx != 0 {
		t.Errorf("End past the last row cx = %d, want 0", cx)
	}
}

func TestSaveRestore(t *testing.T) {
	lines := newLines(make([]string, 40)...)
	v := New(10, 80)
	v.SetCursor(0, 25)
	v.Scroll(lines)
	saved := v.Save()

	v.SetCursor(0, 2)
	v.SetRowOffset(40)
	v.Scroll(lines)
	if v.RowOffset() != 2 {
		t.Errorf("RowOffset = %d, want 2", v.RowOffset())
	}

	v.Restore(saved)
	if _, cy := v.Cursor(); cy != 25 || v.RowOffset() != saved.RowOff {
		t.Errorf("restore = cy %d, rowoff %d", cy, v.RowOffset())
	}
}
