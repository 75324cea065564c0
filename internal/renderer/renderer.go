package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dshills/pickle/internal/engine/buffer"
	"github.com/dshills/pickle/internal/renderer/highlight"
	"github.com/dshills/pickle/internal/renderer/statusline"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

// Escape sequences used in a frame.
const (
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	clearScreen    = "\x1b[2J"
	clearLine      = "\x1b[K"
	inverse        = "\x1b[7m"
	resetAttrs     = "\x1b[m"
	defaultFG      = "\x1b[39m"
	lineEnd        = "\r\n"
	fillerMarker   = "-"
	welcomeBanner  = "Pickle editor -- version %s"
	welcomeHelpRow = "Press Ctrl-Q to quit"
)

// Options configures the renderer.
type Options struct {
	// Theme maps categories to colors.
	Theme *highlight.Theme

	// Version is shown in the welcome banner.
	Version string
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Theme:   highlight.DefaultTheme(),
		Version: "dev",
	}
}

// Renderer composes frames. The returned frame is only valid until the
// next call to Compose.
type Renderer struct {
	opts   Options
	buf    bytes.Buffer
	frames uint64
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.Theme == nil {
		opts.Theme = highlight.DefaultTheme()
	}
	return &Renderer{opts: opts}
}

// Theme returns the active color theme.
func (r *Renderer) Theme() *highlight.Theme {
	return r.opts.Theme
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(t *highlight.Theme) {
	if t != nil {
		r.opts.Theme = t
	}
}

// FrameCount returns the number of frames composed.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// Compose scrolls the viewport to the cursor and builds a complete frame
// of the document, the status bar and the message bar.
func (r *Renderer) Compose(doc *buffer.Document, vp *viewport.Viewport, msg *statusline.Message) []byte {
	vp.Scroll(doc)

	r.buf.Reset()
	r.buf.WriteString(hideCursor)
	r.buf.WriteString(cursorHome)

	r.drawRows(doc, vp)
	r.drawStatusBar(doc, vp)
	r.drawMessageBar(vp, msg)

	x, y := vp.ScreenCursor()
	r.buf.WriteString(CursorPosition(x, y))
	r.buf.WriteString(showCursor)

	r.frames++
	return r.buf.Bytes()
}

// ClearScreen returns the bytes that clear the terminal and home the
// cursor.
func ClearScreen() []byte {
	return []byte(clearScreen + cursorHome)
}

func (r *Renderer) drawRows(doc *buffer.Document, vp *viewport.Viewport) {
	rows, cols := vp.Rows(), vp.Cols()
	welcome := doc.NumRows() == 0 && doc.Filename() == "" && !doc.IsDirty()

	for y := 0; y < rows; y++ {
		at := y + vp.RowOffset()
		switch {
		case at < doc.NumRows():
			r.drawRow(doc.Row(at), vp.ColOffset(), cols)
		case welcome && y == rows/3:
			r.drawWelcome(fmt.Sprintf(welcomeBanner, r.opts.Version), cols)
		case welcome && y == rows/3+1:
			r.drawWelcome(welcomeHelpRow, cols)
		default:
			r.buf.WriteString(fillerMarker)
		}
		r.buf.WriteString(clearLine)
		r.buf.WriteString(lineEnd)
	}
}

// drawWelcome centers text in the row. The row still starts with the
// filler marker.
func (r *Renderer) drawWelcome(text string, cols int) {
	if len(text) > cols {
		text = text[:cols]
	}
	padding := (cols - len(text)) / 2
	if padding > 0 {
		r.buf.WriteString(fillerMarker)
		padding--
	}
	for ; padding > 0; padding-- {
		r.buf.WriteByte(' ')
	}
	r.buf.WriteString(text)
}

// drawRow writes the visible slice of a row's render with colors.
func (r *Renderer) drawRow(row *buffer.Row, colOff, cols int) {
	render, hl := row.Render(), row.Highlight()
	start := min(colOff, len(render))
	end := min(colOff+cols, len(render))

	theme := r.opts.Theme
	colored := false
	current := highlight.Normal

	for i := start; i < end; i++ {
		c := render[i]
		switch {
		case isControl(c):
			r.buf.WriteString(inverse)
			r.buf.WriteByte(controlSymbol(c))
			r.buf.WriteString(resetAttrs)
			if colored {
				r.buf.WriteString(theme.Foreground(current))
			}
		case hl[i] == highlight.Normal:
			if colored {
				r.buf.WriteString(defaultFG)
				colored = false
			}
			r.buf.WriteByte(c)
		default:
			if !colored || hl[i] != current {
				current = hl[i]
				colored = true
				r.buf.WriteString(theme.Foreground(current))
			}
			r.buf.WriteByte(c)
		}
	}
	if colored {
		r.buf.WriteString(defaultFG)
	}
}

func isControl(c byte) bool {
	return c < ' ' || c == 127
}

// controlSymbol returns the caret-notation letter of a control byte, or
// '?' for bytes without one.
func controlSymbol(c byte) byte {
	if c <= 26 {
		return '@' + c
	}
	return '?'
}

func (r *Renderer) drawStatusBar(doc *buffer.Document, vp *viewport.Viewport) {
	info := statusline.Info{
		Filename: doc.Filename(),
		NumRows:  doc.NumRows(),
		Modified: doc.IsDirty(),
	}
	if syn := doc.Syntax(); syn != nil {
		info.FileType = syn.FileType
	}
	_, info.Row = vp.Cursor()

	r.buf.WriteString(inverse)
	r.buf.WriteString(statusline.Bar(info, vp.Cols()))
	r.buf.WriteString(resetAttrs)
	r.buf.WriteString(lineEnd)
}

func (r *Renderer) drawMessageBar(vp *viewport.Viewport, msg *statusline.Message) {
	r.buf.WriteString(clearLine)
	if msg != nil {
		r.buf.WriteString(msg.Render(vp.Cols()))
	}
}

// CursorPosition formats the escape sequence moving the cursor to a
// zero-based screen position.
func CursorPosition(x, y int) string {
	return "\x1b[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}
