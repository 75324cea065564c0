// Package backend provides the terminal the editor draws on and reads keys
// from.
//
// A frame is written with a single Write call. Keys are read one logical
// key at a time with a short idle timeout.
package backend

import (
	"context"
	"errors"

	"github.com/dshills/pickle/internal/input/key"
)

// ErrInputClosed is returned by ReadKey when the input stream has ended.
var ErrInputClosed = errors.New("backend: input closed")

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init prepares the terminal for use (raw mode).
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal to the state found by Init.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int, err error)

	// Write writes a complete frame.
	Write(frame []byte) error

	// ReadKey blocks until a key is pressed or ctx is done.
	ReadKey(ctx context.Context) (key.Event, error)
}
