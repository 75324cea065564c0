package buffer

import (
	"github.com/dshills/pickle/internal/renderer/highlight"
)

// Row is one line of a document.
type Row struct {
	index       int
	chars       []byte
	render      []byte
	hl          []highlight.Category
	openComment bool
}

// Index returns the row's position in its document.
func (r *Row) Index() int {
	return r.index
}

// Len returns the number of raw characters.
func (r *Row) Len() int {
	return len(r.chars)
}

// Chars returns the raw characters. The slice must not be modified.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the display form. The slice must not be modified.
func (r *Row) Render() []byte {
	return r.render
}

// Highlight returns one category per byte of Render.
func (r *Row) Highlight() []highlight.Category {
	return r.hl
}

// OpenComment reports whether the row ends inside a block comment.
func (r *Row) OpenComment() bool {
	return r.openComment
}

// SaveHighlight returns a copy of the row's categories.
func (r *Row) SaveHighlight() []highlight.Category {
	saved := make([]highlight.Category, len(r.hl))
	copy(saved, r.hl)
	return saved
}

// RestoreHighlight copies saved categories back into the row. It does
// nothing if the row was re-rendered to a different length since.
func (r *Row) RestoreHighlight(saved []highlight.Category) {
	if len(saved) != len(r.hl) {
		return
	}
	copy(r.hl, saved)
}

// Overlay sets the categories of render columns [start, start+n) to c,
// clipped to the row.
func (r *Row) Overlay(start, n int, c highlight.Category) {
	if start < 0 || start >= len(r.hl) || n <= 0 {
		return
	}
	end := min(start+n, len(r.hl))
	highlight.Fill(r.hl[start:end], c)
}
