package buffer

import "github.com/dshills/pickle/internal/renderer/layout"

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithTabStop sets the tab stop used to project rows.
func WithTabStop(stop int) Option {
	return func(d *Document) {
		if stop > 0 {
			d.tabs = layout.NewTabExpander(stop)
		}
	}
}

// WithFilename sets the initial file name and selects its language profile.
func WithFilename(name string) Option {
	return func(d *Document) {
		d.filename = name
	}
}
