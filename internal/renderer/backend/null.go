package backend

import (
	"bytes"
	"context"

	"github.com/dshills/pickle/internal/input/key"
)

// NullBackend is a scripted backend for testing. Keys are replayed in
// order; once they run out ReadKey returns ErrInputClosed. Every written
// frame is kept.
type NullBackend struct {
	width, height int
	sizeErr       error
	keys          []key.Event
	frames        [][]byte
	initialized   bool
	shutdowns     int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{width: width, height: height}
}

func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdowns++
}

func (b *NullBackend) Size() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.width, b.height, nil
}

func (b *NullBackend) Write(frame []byte) error {
	b.frames = append(b.frames, bytes.Clone(frame))
	return nil
}

func (b *NullBackend) ReadKey(ctx context.Context) (key.Event, error) {
	if err := ctx.Err(); err != nil {
		return key.Event{}, err
	}
	if len(b.keys) == 0 {
		return key.Event{}, ErrInputClosed
	}
	ev := b.keys[0]
	b.keys = b.keys[1:]
	return ev, nil
}

// PostKeys appends keys to the script.
func (b *NullBackend) PostKeys(events ...key.Event) {
	b.keys = append(b.keys, events...)
}

// PostString appends one KeyChar event per byte of s.
func (b *NullBackend) PostString(s string) {
	for i := 0; i < len(s); i++ {
		b.keys = append(b.keys, key.Char(s[i]))
	}
}

// Pending returns the number of keys not read yet.
func (b *NullBackend) Pending() int {
	return len(b.keys)
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
}

// FailSize makes Size return err.
func (b *NullBackend) FailSize(err error) {
	b.sizeErr = err
}

// Frames returns every frame written so far.
func (b *NullBackend) Frames() [][]byte {
	return b.frames
}

// LastFrame returns the most recent frame, or nil.
func (b *NullBackend) LastFrame() []byte {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// Initialized reports whether Init was called.
func (b *NullBackend) Initialized() bool {
	return b.initialized
}

// ShutdownCount returns how often Shutdown was called.
func (b *NullBackend) ShutdownCount() int {
	return b.shutdowns
}
