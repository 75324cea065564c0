package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/pickle/internal/engine/buffer"
	"github.com/dshills/pickle/internal/renderer/statusline"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

func loadDoc(name string, lines ...string) *buffer.Document {
	doc := buffer.NewDocument(buffer.WithFilename(name))
	raw := make([][]byte, len(lines))
	for i, l := range lines {
		raw[i] = []byte(l)
	}
	doc.Load(raw)
	return doc
}

// frameLines splits a frame into its text rows, the status bar and the
// message bar.
func frameLines(t *testing.T, frame string, rows int) (text []string, status, message string) {
	t.Helper()
	if !strings.HasPrefix(frame, hideCursor+cursorHome) {
		t.Fatalf("frame does not start with hide+home: %q", frame)
	}
	frame = strings.TrimPrefix(frame, hideCursor+cursorHome)
	parts := strings.Split(frame, lineEnd)
	if len(parts) != rows+2 {
		t.Fatalf("frame has %d lines, want %d: %q", len(parts), rows+2, frame)
	}
	return parts[:rows], parts[rows], parts[rows+1]
}

func compose(doc *buffer.Document, vp *viewport.Viewport, msg *statusline.Message) string {
	r := New(Options{Version: "test"})
	return string(r.Compose(doc, vp, msg))
}

func TestComposeWelcome(t *testing.T) {
	doc := buffer.NewDocument()
	vp := viewport.New(9, 80)
	frame := compose(doc, vp, nil)

	rows, _, _ := frameLines(t, frame, 9)
	for y, row := range rows {
		switch y {
		case 3:
			if !strings.HasPrefix(row, "-") || !strings.Contains(row, "Pickle editor -- version test") {
				t.Errorf("row 3 = %q, want banner", row)
			}
		case 4:
			if !strings.Contains(row, "Press Ctrl-Q to quit") {
				t.Errorf("row 4 = %q, want help line", row)
			}
		default:
			if row != "-"+clearLine {
				t.Errorf("row %d = %q, want filler", y, row)
			}
		}
	}
	if !strings.HasSuffix(frame, CursorPosition(0, 0)+showCursor) {
		t.Errorf("frame should end with cursor placement: %q", frame[len(frame)-20:])
	}
}

func TestComposeNoWelcomeForNamedDocument(t *testing.T) {
	doc := buffer.NewDocument(buffer.WithFilename("new.txt"))
	vp := viewport.New(9, 80)
	frame := compose(doc, vp, nil)
	if strings.Contains(frame, "Pickle editor") {
		t.Error("named document should not show the banner")
	}
}

func TestComposePlainRows(t *testing.T) {
	doc := loadDoc("", "hello", "world")
	vp := viewport.New(4, 20)
	rows, _, _ := frameLines(t, compose(doc, vp, nil), 4)

	want := []string{"hello" + clearLine, "world" + clearLine, "-" + clearLine, "-" + clearLine}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestComposeColorsOnlyOnChange(t *testing.T) {
	doc := loadDoc("main.c", "int x = 42;", "// abc")
	vp := viewport.New(2, 40)
	rows, _, _ := frameLines(t, compose(doc, vp, nil), 2)

	want0 := "\x1b[32mint\x1b[39m x = \x1b[31m42\x1b[39m;" + clearLine
	if rows[0] != want0 {
		t.Errorf("row 0 = %q, want %q", rows[0], want0)
	}
	want1 := "\x1b[36m// abc\x1b[39m" + clearLine
	if rows[1] != want1 {
		t.Errorf("row 1 = %q, want %q", rows[1], want1)
	}
}

func TestComposeControlCharacters(t *testing.T) {
	doc := loadDoc("", "a\x01b\x7f")
	vp := viewport.New(1, 40)
	rows, _, _ := frameLines(t, compose(doc, vp, nil), 1)
	want := "a\x1b[7mA\x1b[mb\x1b[7m?\x1b[m" + clearLine
	if rows[0] != want {
		t.Errorf("row = %q, want %q", rows[0], want)
	}

	// Inside a colored span the color is selected again after the glyph.
	doc = loadDoc("x.c", "\"a\x01\"")
	rows, _, _ = frameLines(t, compose(doc, vp, nil), 1)
	want = "\x1b[35m\"a\x1b[7mA\x1b[m\x1b[35m\"\x1b[39m" + clearLine
	if rows[0] != want {
		t.Errorf("row = %q, want %q", rows[0], want)
	}
}

func TestComposeHorizontalScroll(t *testing.T) {
	doc := loadDoc("", "0123456789abc")
	vp := viewport.New(1, 5)
	vp.SetCursor(12, 0)
	frame := compose(doc, vp, nil)

	rows, _, _ := frameLines(t, frame, 1)
	if rows[0] != "89abc"+clearLine {
		t.Errorf("row = %q", rows[0])
	}
	if !strings.Contains(frame, CursorPosition(4, 0)) {
		t.Error("cursor should be on the last visible column")
	}
}

func TestComposeVerticalScrollCursor(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "row"
	}
	doc := loadDoc("", lines...)
	vp := viewport.New(10, 80)
	vp.SetCursor(2, 15)
	frame := compose(doc, vp, nil)

	if vp.RowOffset() != 6 {
		t.Errorf("RowOffset = %d, want 6", vp.RowOffset())
	}
	if !strings.HasSuffix(frame, "\x1b[10;3H"+showCursor) {
		t.Errorf("cursor escape missing: %q", frame[len(frame)-16:])
	}
}

func TestComposeTabsUseRenderColumn(t *testing.T) {
	doc := loadDoc("", "\tx")
	vp := viewport.New(1, 40)
	vp.SetCursor(1, 0)
	frame := compose(doc, vp, nil)

	rows, _, _ := frameLines(t, frame, 1)
	if rows[0] != "        x"+clearLine {
		t.Errorf("row = %q", rows[0])
	}
	if !strings.Contains(frame, CursorPosition(8, 0)) {
		t.Error("cursor should be placed after the expanded tab")
	}
}

func TestComposeStatusAndMessage(t *testing.T) {
	doc := loadDoc("prog.py", "x = 1")
	doc.InsertChar(0, 0, ' ')
	vp := viewport.New(2, 60)

	now := time.Unix(100, 0)
	msg := statusline.NewMessage(0, func() time.Time { return now })
	msg.Set("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	_, status, message := frameLines(t, compose(doc, vp, msg), 2)

	if !strings.HasPrefix(status, inverse+"prog.py - 1 lines (modified)") {
		t.Errorf("status = %q", status)
	}
	if !strings.HasSuffix(status, "Python | 1/1"+resetAttrs) {
		t.Errorf("status = %q", status)
	}
	if len(status) != len(inverse)+60+len(resetAttrs) {
		t.Errorf("status bar should span the width: %q", status)
	}
	if !strings.HasPrefix(message, clearLine+"HELP: Ctrl-S = save") {
		t.Errorf("message = %q", message)
	}

	now = now.Add(statusline.DefaultTimeout)
	_, _, message = frameLines(t, compose(doc, vp, msg), 2)
	if strings.Contains(message, "HELP") {
		t.Error("message should expire")
	}
}

func TestRendererFrameCountAndTheme(t *testing.T) {
	r := New(DefaultOptions())
	if r.Theme() == nil {
		t.Fatal("default theme missing")
	}
	doc := buffer.NewDocument()
	vp := viewport.New(3, 10)
	r.Compose(doc, vp, nil)
	r.Compose(doc, vp, nil)
	if r.FrameCount() != 2 {
		t.Errorf("FrameCount = %d", r.FrameCount())
	}
	r.SetTheme(nil)
	if r.Theme() == nil {
		t.Error("SetTheme(nil) should keep the theme")
	}
}

func TestClearScreen(t *testing.T) {
	if string(ClearScreen()) != "\x1b[2J\x1b[H" {
		t.Errorf("ClearScreen = %q", ClearScreen())
	}
}
