//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package backend

import "os"

// setReadTimeout is a no-op where termios is unavailable; reads block
// until a byte arrives.
func setReadTimeout(int) error {
	return nil
}

func readRaw(f *os.File, p []byte) (int, error) {
	return f.Read(p)
}
