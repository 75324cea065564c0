// Package search implements incremental search over a document.
//
// The controller is driven by the prompt: after every keystroke the
// current query and the key are passed to Update, which moves the cursor to
// the next match and paints it with the Match category. The categories the
// match covered are saved and put back before the next search step, so a
// row never keeps a stale match highlight.
package search

import (
	"bytes"

	"github.com/dshills/pickle/internal/engine/buffer"
	"github.com/dshills/pickle/internal/input/key"
	"github.com/dshills/pickle/internal/renderer/highlight"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

// Direction is the direction rows are scanned in.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Controller holds the state of one search session.
type Controller struct {
	origin    int
	lastMatch int
	direction Direction

	savedRow int
	savedHL  []highlight.Category
}

// New creates an idle controller.
func New() *Controller {
	c := &Controller{}
	c.reset()
	return c
}

// Begin starts a session. The first scan starts at the origin row.
func (c *Controller) Begin(origin int) {
	c.reset()
	c.origin = max(origin, 0)
}

// LastMatch returns the row of the current match, or -1.
func (c *Controller) LastMatch() int {
	return c.lastMatch
}

// Direction returns the direction of the last scan.
func (c *Controller) Direction() Direction {
	return c.direction
}

func (c *Controller) reset() {
	c.lastMatch = -1
	c.direction = Forward
}

// Update runs one search step for query after ev was applied to it.
//
// Enter and Escape end the session. The arrows Right and Down search
// forward past the current match, Left and Up backward. Any other key
// searches forward from the current match row, that row included, or from
// the origin before anything matched.
func (c *Controller) Update(doc *buffer.Document, vp *viewport.Viewport, query string, ev key.Event) {
	c.Restore(doc)

	step := true
	switch ev.Key {
	case key.KeyEnter, key.KeyEscape:
		c.reset()
		return
	case key.KeyRight, key.KeyDown:
		c.direction = Forward
	case key.KeyLeft, key.KeyUp:
		c.direction = Backward
	default:
		c.direction = Forward
		step = false
	}

	n := doc.NumRows()
	if query == "" || n == 0 {
		return
	}

	// A step starts past the last match; a fresh scan visits its start
	// row first.
	start, first := c.lastMatch, 1
	if c.lastMatch == -1 {
		c.direction = Forward
		start, step = c.origin, false
	}
	if !step {
		start, first = min(start, n-1), 0
	}

	needle := []byte(query)
	for k := first; k < first+n; k++ {
		at := wrap(start+int(c.direction)*k, n)
		row := doc.Row(at)
		idx := bytes.Index(row.Render(), needle)
		if idx < 0 {
			continue
		}

		c.lastMatch = at
		vp.SetCursor(doc.RxToCx(at, idx), at)
		// Scroll places the match at the top of the window.
		vp.SetRowOffset(n)

		c.savedRow = at
		c.savedHL = row.SaveHighlight()
		row.Overlay(idx, len(needle), highlight.Match)
		return
	}
}

// Restore puts back the categories covered by the current match highlight.
func (c *Controller) Restore(doc *buffer.Document) {
	if c.savedHL == nil {
		return
	}
	if row := doc.Row(c.savedRow); row != nil {
		row.RestoreHighlight(c.savedHL)
	}
	c.savedHL = nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
