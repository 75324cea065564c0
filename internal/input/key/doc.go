// Package key defines the logical key codes the editor reacts to and
// decodes them from the raw byte stream of a terminal in raw mode.
//
// Printable and control bytes arrive as KeyChar events carrying the byte.
// The escape sequences sent for the arrows, Home, End, Page Up, Page Down
// and Delete are folded into named keys; any other escape sequence becomes
// KeyEscape.
//
// Key names such as "Ctrl+Q", "Enter" or "PageDown" can be parsed with
// Parse to build binding tables.
package key
