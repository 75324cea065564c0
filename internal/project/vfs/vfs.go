// Package vfs provides the file access the editor needs: reading a file as
// lines and writing a whole document back.
//
// The FS interface allows swapping the OS file system for an in-memory one
// in tests.
package vfs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultPerm is the permission of files created by a save.
const DefaultPerm = 0o644

// FS is a minimal file system abstraction.
type FS interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create opens a file for writing, creating it with DefaultPerm if
	// necessary and truncating it otherwise.
	Create(path string) (io.WriteCloser, error)
}

// ReadLines reads a file and splits it into lines. Trailing CR and LF
// bytes are stripped from every line. A final line without a line feed is
// kept; an empty file yields no lines.
func ReadLines(fsys FS, path string) ([][]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, trimEOL(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// WriteAll replaces the content of a file with data and returns the number
// of bytes written. A failure may leave the file partially written.
func WriteAll(fsys FS, path string, data []byte) (int, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return n, err
	}
	if n != len(data) {
		f.Close()
		return n, io.ErrShortWrite
	}
	if err := f.Close(); err != nil {
		return n, err
	}
	return n, nil
}
