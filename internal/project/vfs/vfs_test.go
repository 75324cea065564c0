package vfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single with newline", "hello\n", []string{"hello"}},
		{"no final newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "\n\nx\n", []string{"", "", "x"}},
		{"tabs kept", "\tint x;\n", []string{"\tint x;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemFS()
			m.AddFile("/f.txt", tt.content)
			lines, err := ReadLines(m, "/f.txt")
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(tt.want))
			}
			for i := range lines {
				if string(lines[i]) != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadLinesMissing(t *testing.T) {
	_, err := ReadLines(NewMemFS(), "/nope")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestWriteAll(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/out.txt", "old content that is longer")

	n, err := WriteAll(m, "/out.txt", []byte("new\n"))
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	got, ok := m.ReadFile("/out.txt")
	if !ok || string(got) != "new\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteAllFailure(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/out.txt", "keep")
	boom := errors.New("disk full")
	m.FailWrites(boom)

	if _, err := WriteAll(m, "/out.txt", []byte("x")); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
	if got, _ := m.ReadFile("/out.txt"); string(got) != "keep" {
		t.Errorf("failed create should not touch the file, got %q", got)
	}

	m.FailWrites(nil)
	if _, err := WriteAll(m, "/out.txt", []byte("x")); err != nil {
		t.Errorf("writes should work again: %v", err)
	}
}

func TestMemFSPaths(t *testing.T) {
	m := NewMemFS()
	m.AddFile("b.txt", "")
	m.AddFile("/a/../a.txt", "")
	files := m.Files()
	if len(files) != 2 || files[0] != "/a.txt" || files[1] != "/b.txt" {
		t.Errorf("Files() = %v", files)
	}
}

func TestOSFSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "file.c")
	osfs := NewOSFS()

	content := []byte("int main() {\n\treturn 0;\n}\n")
	if _, err := WriteAll(osfs, p, content); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o600 != 0o600 {
		t.Errorf("mode = %v", info.Mode())
	}

	lines, err := ReadLines(osfs, p)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 3 || string(lines[1]) != "\treturn 0;" {
		t.Errorf("lines = %q", lines)
	}

	if _, err := WriteAll(osfs, p, []byte("x\n")); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(p)
	if string(data) != "x\n" {
		t.Errorf("file should be truncated, got %q", data)
	}

	if _, err := ReadLines(osfs, filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
