//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package backend

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// setReadTimeout makes a read return after at most a tenth of a second
// even when no byte arrived (VMIN 0, VTIME 1).
func setReadTimeout(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
}

// readRaw reads the terminal fd directly. os.File turns the empty read of
// an expired VTIME into io.EOF; here it is (0, nil), as are EINTR and
// EAGAIN.
func readRaw(f *os.File, p []byte) (int, error) {
	n, err := unix.Read(int(f.Fd()), p)
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return n, nil
}
