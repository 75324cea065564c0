// Package buffer provides the row store of the editor: an ordered list of
// rows, each holding its raw characters together with the derived display
// form and syntax categories.
//
// Every mutation keeps three invariants:
//   - a row's render and highlight slices have the same length,
//   - a row's Index equals its position in the document,
//   - a row's open-comment state is current. When it flips, the following
//     row is reclassified, and so on until a row's state is unchanged.
//
// Documents are not safe for concurrent use. The editor drives them from a
// single event loop.
package buffer
