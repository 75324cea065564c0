package search

import (
	"slices"
	"testing"

	"github.com/dshills/pickle/internal/engine/buffer"
	"github.com/dshills/pickle/internal/input/key"
	"github.com/dshills/pickle/internal/renderer/highlight"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

func newDoc(t *testing.T, name string, lines ...string) *buffer.Document {
	t.Helper()
	doc := buffer.NewDocument(buffer.WithFilename(name))
	raw := make([][]byte, len(lines))
	for i, l := range lines {
		raw[i] = []byte(l)
	}
	doc.Load(raw)
	return doc
}

// typeQuery feeds query one byte at a time, the way the prompt does.
func typeQuery(c *Controller, doc *buffer.Document, vp *viewport.Viewport, query string) {
	for i := 1; i <= len(query); i++ {
		c.Update(doc, vp, query[:i], key.Char(query[i-1]))
	}
}

func TestFindFirstMatch(t *testing.T) {
	doc := newDoc(t, "", "alpha", "beta", "gamma beta")
	vp := viewport.New(10, 80)
	c := New()
	c.Begin(0)

	typeQuery(c, doc, vp, "beta")

	cx, cy := vp.Cursor()
	if cy != 1 || cx != 0 {
		t.Errorf("cursor = %d,%d, want 0,1", cx, cy)
	}
	if c.LastMatch() != 1 {
		t.Errorf("LastMatch = %d", c.LastMatch())
	}
	hl := doc.Row(1).Highlight()
	for i, cat := range hl {
		if cat != highlight.Match {
			t.Errorf("hl[%d] = %v, want Match", i, cat)
		}
	}
}

func TestSearchWrapsForward(t *testing.T) {
	doc := newDoc(t, "", "needle", "hay", "hay")
	vp := viewport.New(10, 80)
	c := New()
	c.Begin(2)

	typeQuery(c, doc, vp, "needle")

	if _, cy := vp.Cursor(); cy != 0 {
		t.Errorf("search from row 2 should wrap to row 0, cursor row = %d", cy)
	}
}

func TestSearchArrowsStepBetweenMatches(t *testing.T) {
	doc := newDoc(t, "", "x1", "none", "x2", "x3")
	vp := viewport.New(10, 80)
	c := New()
	c.Begin(0)

	typeQuery(c, doc, vp, "x")
	if c.LastMatch() != 0 {
		t.Fatalf("LastMatch = %d, want 0", c.LastMatch())
	}

	steps := []struct {
		ev   key.Event
		want int
	}{
		{key.Special(key.KeyDown), 2},
		{key.Special(key.KeyRight), 3},
		{key.Special(key.KeyDown), 0},
		{key.Special(key.KeyUp), 3},
		{key.Special(key.KeyLeft), 2},
		{key.Special(key.KeyLeft), 0},
	}
	for i, s := range steps {
		c.Update(doc, vp, "x", s.ev)
		if c.LastMatch() != s.want {
			t.Errorf("step %d: LastMatch = %d, want %d", i, c.LastMatch(), s.want)
		}
	}
	if c.Direction() != Backward {
		t.Errorf("Direction = %v", c.Direction())
	}
}

func TestSearchTypingContinuesFromCurrentMatch(t *testing.T) {
	doc := newDoc(t, "", "ab", "ab", "abc")
	vp := viewport.New(10, 80)
	c := New()
	c.Begin(0)

	steps := []struct {
		query string
		ev    key.Event
		want  int
	}{
		{"a", key.Char('a'), 0},
		{"a", key.Special(key.KeyDown), 1},
		{"ab", key.Char('b'), 1},
		{"abc", key.Char('c'), 2},
		{"ab", key.Special(key.KeyBackspace), 2},
	}
	for i, s := range steps {
		c.Update(doc, vp, s.query, s.ev)
		if c.LastMatch() != s.want {
			t.Errorf("step %d (%q): LastMatch = %d, want %d", i, s.query, c.LastMatch(), s.want)
		}
		if c.Direction() != Forward {
			t.Errorf("step %d: Direction = %v, want Forward", i, c.Direction())
		}
	}
}

func TestSearchColumnUsesRenderOffset(t *testing.T) {
	doc := newDoc(t, "", "\tfoo")
	vp := viewport.New(10, 80)
	c := New()
	typeQuery(c, doc, vp, "foo")

	if cx, _ := vp.Cursor(); cx != 1 {
		t.Errorf("cx = %d, want 1 (after the tab)", cx)
	}
	hl := doc.Row(0).Highlight()
	if hl[7] != highlight.Normal || hl[8] != highlight.Match || hl[10] != highlight.Match {
		t.Errorf("hl = %v", hl)
	}
}

func TestSearchScrollsMatchToTop(t *testing.T) {
	lines := make([]string, 50)
	lines[40] = "target"
	doc := newDoc(t, "", lines...)
	vp := viewport.New(10, 80)
	c := New()

	typeQuery(c, doc, vp, "target")
	vp.Scroll(doc)
	if vp.RowOffset() != 40 {
		t.Errorf("RowOffset = %d, want 40", vp.RowOffset())
	}
}

func TestSearchRestoresHighlight(t *testing.T) {
	doc := newDoc(t, "x.c", "int a = 1;", "int b;")
	before0 := slices.Clone(doc.Row(0).Highlight())
	vp := viewport.New(10, 80)
	c := New()

	typeQuery(c, doc, vp, "int")
	if doc.Row(0).Highlight()[0] != highlight.Match {
		t.Fatal("match should be painted")
	}

	c.Update(doc, vp, "int", key.Special(key.KeyDown))
	if !slices.Equal(doc.Row(0).Highlight(), before0) {
		t.Errorf("row 0 not restored: %v", doc.Row(0).Highlight())
	}
	if doc.Row(1).Highlight()[0] != highlight.Match {
		t.Error("row 1 should be painted")
	}

	before1 := []highlight.Category{
		highlight.Keyword2, highlight.Keyword2, highlight.Keyword2,
		highlight.Normal, highlight.Normal, highlight.Normal,
	}
	c.Update(doc, vp, "int", key.Special(key.KeyEscape))
	if !slices.Equal(doc.Row(1).Highlight(), before1) {
		t.Errorf("row 1 not restored on escape: %v", doc.Row(1).Highlight())
	}
	if c.LastMatch() != -1 {
		t.Error("escape should reset the session")
	}
}

func TestSearchNoMatchLeavesCursor(t *testing.T) {
	doc := newDoc(t, "", "abc", "def")
	vp := viewport.New(10, 80)
	vp.SetCursor(1, 1)
	c := New()
	c.Begin(1)

	typeQuery(c, doc, vp, "zzz")
	if cx, cy := vp.Cursor(); cx != 1 || cy != 1 {
		t.Errorf("cursor moved to %d,%d", cx, cy)
	}
	if c.LastMatch() != -1 {
		t.Errorf("LastMatch = %d", c.LastMatch())
	}
}

func TestSearchEmptyQueryAndDocument(t *testing.T) {
	vp := viewport.New(10, 80)
	c := New()

	empty := buffer.NewDocument()
	c.Update(empty, vp, "a", key.Char('a'))
	if c.LastMatch() != -1 {
		t.Error("empty document cannot match")
	}

	doc := newDoc(t, "", "abc")
	c.Update(doc, vp, "", key.Special(key.KeyBackspace))
	if c.LastMatch() != -1 {
		t.Error("empty query should not match")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0}, {3, 3, 0}, {-1, 3, 2}, {5, 3, 2}, {-4, 3, 2},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
