package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/pickle/internal/input/key"
)

// Terminal implements Backend on a pair of terminal files, normally
// os.Stdin and os.Stdout.
type Terminal struct {
	in      *os.File
	out     *os.File
	decoder *key.Decoder
	saved   *term.State
}

// NewTerminal creates a terminal backend reading keys from in and writing
// frames to out.
func NewTerminal(in, out *os.File) *Terminal {
	t := &Terminal{in: in, out: out}
	t.decoder = key.NewDecoder(input{t})
	return t
}

// input feeds the decoder. In raw mode an idle read yields no bytes and no
// error. Before Init the file is read as is, so a closed pipe ends input.
type input struct {
	t *Terminal
}

func (r input) Read(p []byte) (int, error) {
	if r.t.saved == nil {
		return r.t.in.Read(p)
	}
	return readRaw(r.t.in, p)
}

// Init switches the input to raw mode: no echo, no line buffering, no
// signal keys, no output post-processing and reads that return after a
// tenth of a second without input.
func (t *Terminal) Init() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("init terminal: %s is not a terminal", t.in.Name())
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.saved = saved
	if err := setReadTimeout(fd); err != nil {
		t.Shutdown()
		return fmt.Errorf("init terminal: %w", err)
	}
	return nil
}

func (t *Terminal) Shutdown() {
	if t.saved == nil {
		return
	}
	_ = term.Restore(int(t.in.Fd()), t.saved)
	t.saved = nil
}

func (t *Terminal) Size() (int, int, error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if w == 0 || h == 0 {
		return 0, 0, errors.New("get window size: terminal reports zero size")
	}
	return w, h, nil
}

func (t *Terminal) Write(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

func (t *Terminal) ReadKey(ctx context.Context) (key.Event, error) {
	ev, err := t.decoder.ReadEvent(ctx)
	if errors.Is(err, io.EOF) {
		return key.Event{}, ErrInputClosed
	}
	return ev, err
}
