package vfs

import (
	"io"
	"os"
)

// OSFS implements FS using the operating system's file system.
type OSFS struct{}

// NewOSFS creates a new OS file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Ensure OSFS implements FS.
var _ FS = (*OSFS)(nil)

// Open opens a file for reading.
func (f *OSFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create opens a file for writing, truncating it.
func (f *OSFS) Create(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultPerm)
}
