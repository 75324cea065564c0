package buffer

import (
	"slices"

	"github.com/dshills/pickle/internal/renderer/highlight"
	"github.com/dshills/pickle/internal/renderer/layout"
)

// Document is an ordered sequence of rows plus the file it came from, the
// selected language profile and a count of unsaved changes.
type Document struct {
	rows     []*Row
	dirty    int
	filename string
	syntax   *highlight.Syntax
	tabs     *layout.TabExpander
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		tabs: layout.DefaultTabExpander(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.syntax = highlight.Select(d.filename)
	return d
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at the given index, or nil if out of range.
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// RowLen returns the length of the row at the given index, or 0 past the
// end of the document.
func (d *Document) RowLen(at int) int {
	if row := d.Row(at); row != nil {
		return row.Len()
	}
	return 0
}

// CxToRx converts a logical column of a row into its visual column.
func (d *Document) CxToRx(at, cx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return d.tabs.CxToRx(row.chars, cx)
}

// RxToCx converts a visual column of a row into its logical column.
func (d *Document) RxToCx(at, rx int) int {
	row := d.Row(at)
	if row == nil {
		return 0
	}
	return d.tabs.RxToCx(row.chars, rx)
}

// TabStop returns the tab stop used to render rows.
func (d *Document) TabStop() int {
	return d.tabs.TabStop()
}

// Dirty returns the number of mutations since the last load or save.
func (d *Document) Dirty() int {
	return d.dirty
}

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool {
	return d.dirty > 0
}

// MarkClean resets the unsaved-changes count, typically after a save.
func (d *Document) MarkClean() {
	d.dirty = 0
}

// Filename returns the file name, or "" for an unnamed document.
func (d *Document) Filename() string {
	return d.filename
}

// Syntax returns the selected language profile, or nil.
func (d *Document) Syntax() *highlight.Syntax {
	return d.syntax
}

// SetFilename changes the file name, selects the matching language profile
// and reclassifies every row.
func (d *Document) SetFilename(name string) {
	d.filename = name
	d.syntax = highlight.Select(name)
	d.rehighlightAll()
}

// Load replaces the document content with the given lines and resets the
// unsaved-changes count.
func (d *Document) Load(lines [][]byte) {
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.InsertRow(len(d.rows), line)
	}
	d.dirty = 0
}

// InsertRow inserts a row holding a copy of text. The position is clamped
// to [0, NumRows()].
func (d *Document) InsertRow(at int, text []byte) {
	at = max(0, min(at, len(d.rows)))

	row := &Row{
		index: at,
		chars: slices.Clone(text),
		// The row following the new one was classified with the state of
		// the row now preceding the new one. Starting from that state makes
		// the cascade fire exactly when the following row needs it.
		openComment: d.openCommentBefore(at),
	}
	if row.chars == nil {
		row.chars = []byte{}
	}

	d.rows = slices.Insert(d.rows, at, row)
	d.renumber(at + 1)
	d.updateRow(row)
	d.dirty++
}

// DeleteRow removes the row at the given index. Out of range is a no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	removed := d.rows[at]
	d.rows = slices.Delete(d.rows, at, at+1)
	d.renumber(at)
	if at < len(d.rows) && removed.openComment != d.openCommentBefore(at) {
		d.updateSyntax(at)
	}
	d.dirty++
}

// InsertChar inserts c into a row before column col. Inserting into the
// row one past the end first appends an empty row. Columns outside
// [0, len] are a no-op.
func (d *Document) InsertChar(at, col int, c byte) {
	if at == len(d.rows) {
		d.InsertRow(at, nil)
	}
	row := d.Row(at)
	if row == nil || col < 0 || col > len(row.chars) {
		return
	}
	row.chars = slices.Insert(row.chars, col, c)
	d.updateRow(row)
	d.dirty++
}

// DeleteChar removes the character at column col of a row. Out of range
// is a no-op.
func (d *Document) DeleteChar(at, col int) {
	row := d.Row(at)
	if row == nil || col < 0 || col >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, col, col+1)
	d.updateRow(row)
	d.dirty++
}

// AppendText appends text to the end of a row.
func (d *Document) AppendText(at int, text []byte) {
	row := d.Row(at)
	if row == nil {
		return
	}
	row.chars = append(row.chars, text...)
	d.updateRow(row)
	d.dirty++
}

// SplitRowAt breaks a row in two at column col: the characters from col
// onwards move to a new row inserted below. Splitting at column 0 inserts
// an empty row above, which also works one past the last row.
func (d *Document) SplitRowAt(at, col int) {
	if col == 0 {
		if at >= 0 && at <= len(d.rows) {
			d.InsertRow(at, nil)
		}
		return
	}
	row := d.Row(at)
	if row == nil || col < 0 || col > len(row.chars) {
		return
	}
	d.InsertRow(at+1, row.chars[col:])
	row.chars = row.chars[:col:col]
	d.updateRow(row)
}

// JoinWithPrevious appends a row to the one above it and removes it. It
// returns the column in the previous row where the joined text starts.
// The first row, and rows out of range, cannot be joined.
func (d *Document) JoinWithPrevious(at int) (int, bool) {
	if at <= 0 || at >= len(d.rows) {
		return 0, false
	}
	prev := d.rows[at-1]
	col := len(prev.chars)
	d.AppendText(at-1, d.rows[at].chars)
	d.DeleteRow(at)
	return col, true
}

// Bytes serializes the document: every row followed by a line feed.
func (d *Document) Bytes() []byte {
	n := 0
	for _, row := range d.rows {
		n += len(row.chars) + 1
	}
	buf := make([]byte, 0, n)
	for _, row := range d.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// renumber fixes the index of every row from the given position on.
func (d *Document) renumber(from int) {
	for i := from; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
}

// openCommentBefore returns the comment state a row at the given index
// starts in.
func (d *Document) openCommentBefore(at int) bool {
	return at > 0 && at <= len(d.rows) && d.rows[at-1].openComment
}

// updateRow re-derives the render and highlight of a row after its
// characters changed.
func (d *Document) updateRow(row *Row) {
	row.render = d.tabs.Project(row.chars)
	row.hl = make([]highlight.Category, len(row.render))
	d.updateSyntax(row.index)
}

// updateSyntax classifies the row at the given index and keeps going
// down the document while the open-comment state of the classified row
// changes.
func (d *Document) updateSyntax(at int) {
	for at < len(d.rows) {
		row := d.rows[at]
		open := highlight.Classify(d.syntax, row.render, row.hl, d.openCommentBefore(at))
		changed := open != row.openComment
		row.openComment = open
		if !changed {
			return
		}
		at++
	}
}

// rehighlightAll classifies every row in order, e.g. after the language
// profile changed.
func (d *Document) rehighlightAll() {
	for i, row := range d.rows {
		row.openComment = highlight.Classify(d.syntax, row.render, row.hl, d.openCommentBefore(i))
	}
}
