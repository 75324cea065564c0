package vfs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// MemFS implements FS in memory. It is used for testing.
//
// A file written through Create becomes visible when the writer is closed.
// FailWrites makes every later write fail, to simulate a full disk.
type MemFS struct {
	files    map[string][]byte
	writeErr error
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// Open opens a file for reading.
func (m *MemFS) Open(filePath string) (io.ReadCloser, error) {
	content, ok := m.files[m.cleanPath(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// Create opens a file for writing. The file is truncated immediately.
func (m *MemFS) Create(filePath string) (io.WriteCloser, error) {
	if m.writeErr != nil {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: m.writeErr}
	}
	p := m.cleanPath(filePath)
	m.files[p] = nil
	return &memWriter{fs: m, path: p}, nil
}

// FailWrites makes Create fail with err. A nil err restores writing.
func (m *MemFS) FailWrites(err error) {
	m.writeErr = err
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string) {
	m.files[m.cleanPath(filePath)] = []byte(content)
}

// ReadFile returns the content of a file.
func (m *MemFS) ReadFile(filePath string) ([]byte, bool) {
	content, ok := m.files[m.cleanPath(filePath)]
	return bytes.Clone(content), ok
}

// Files returns all file paths in the file system.
func (m *MemFS) Files() []string {
	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// cleanPath normalizes a path.
func (m *MemFS) cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// memWriter implements io.WriteCloser for MemFS.Create().
type memWriter struct {
	fs   *MemFS
	path string
	buf  bytes.Buffer
}

func (w *memWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.fs.files[w.path] = bytes.Clone(w.buf.Bytes())
	return nil
}
