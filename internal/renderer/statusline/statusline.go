// Package statusline builds the two bottom lines of the editor: the
// reverse-video status bar and the transient message bar.
package statusline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaxFilenameWidth is the number of columns of the file name shown in the
// status bar.
const MaxFilenameWidth = 20

// Info is the document state shown in the status bar.
type Info struct {
	Filename string
	NumRows  int
	Modified bool
	// FileType is the name of the selected language profile, "" for none.
	FileType string
	// Row is the zero-based cursor row.
	Row int
}

// Left returns the left-aligned part of the status bar:
// file name, row count and modified marker.
func Left(info Info) string {
	name := info.Filename
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, MaxFilenameWidth, "")

	modified := ""
	if info.Modified {
		modified = "(modified)"
	}
	return fmt.Sprintf("%s - %d lines %s", name, info.NumRows, modified)
}

// Right returns the right-aligned part of the status bar: file type and
// cursor row over row count.
func Right(info Info) string {
	ft := info.FileType
	if ft == "" {
		ft = "no filetype"
	}
	return ft + " | " + strconv.Itoa(info.Row+1) + "/" + strconv.Itoa(info.NumRows)
}

// Bar lays out the status bar over exactly width columns. The left part is
// clipped to the width; the right part is only shown when it fits after it.
func Bar(info Info, width int) string {
	if width <= 0 {
		return ""
	}
	left := runewidth.Truncate(Left(info), width, "")
	right := Right(info)

	used := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)

	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(left)
	if width-used >= rw {
		sb.WriteString(strings.Repeat(" ", width-used-rw))
		sb.WriteString(right)
	} else {
		sb.WriteString(strings.Repeat(" ", width-used))
	}
	return sb.String()
}
