// Package renderer composes editor frames.
//
// A frame is built in one buffer and handed to the backend in a single
// write, so a partially drawn screen is never visible:
//
//	hide cursor, home
//	text rows     (filler "-" past the end of the document)
//	status bar    (reverse video)
//	message bar
//	cursor position, show cursor
//
// Colors come from a highlight.Theme. A color escape is only emitted when
// the category changes between adjacent characters.
package renderer
