package key

import (
	"context"
	"io"
)

const esc = 0x1b

// Decoder turns the raw byte stream of a terminal into key events.
//
// The reader is expected to behave like a terminal with a short read
// timeout: a read may return no bytes and no error when no input is
// pending. Waiting for the first byte of an event retries such reads;
// a missing byte inside an escape sequence ends the sequence.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadEvent blocks until a key is available or ctx is done.
func (d *Decoder) ReadEvent(ctx context.Context) (Event, error) {
	var c byte
	for {
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if ok {
			c = b
			break
		}
	}

	switch c {
	case esc:
		return d.readEscape(), nil
	case '\r':
		return Special(KeyEnter), nil
	case 127:
		return Special(KeyBackspace), nil
	}
	return Char(c), nil
}

// readByte reads one byte. ok is false when the read timed out.
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return 0, false, nil
}

// next reads one byte of an escape sequence.
func (d *Decoder) next() (byte, bool) {
	b, ok, err := d.readByte()
	if err != nil {
		return 0, false
	}
	return b, ok
}

// readEscape decodes the rest of a sequence that started with ESC.
func (d *Decoder) readEscape() Event {
	s0, ok := d.next()
	if !ok {
		return Special(KeyEscape)
	}
	s1, ok := d.next()
	if !ok {
		return Special(KeyEscape)
	}

	switch s0 {
	case '[':
		if s1 >= '0' && s1 <= '9' {
			s2, ok := d.next()
			if !ok || s2 != '~' {
				return Special(KeyEscape)
			}
			switch s1 {
			case '1', '7':
				return Special(KeyHome)
			case '3':
				return Special(KeyDelete)
			case '4', '8':
				return Special(KeyEnd)
			case '5':
				return Special(KeyPageUp)
			case '6':
				return Special(KeyPageDown)
			}
			return Special(KeyEscape)
		}
		switch s1 {
		case 'A':
			return Special(KeyUp)
		case 'B':
			return Special(KeyDown)
		case 'C':
			return Special(KeyRight)
		case 'D':
			return Special(KeyLeft)
		case 'H':
			return Special(KeyHome)
		case 'F':
			return Special(KeyEnd)
		}
	case 'O':
		switch s1 {
		case 'H':
			return Special(KeyHome)
		case 'F':
			return Special(KeyEnd)
		}
	}
	return Special(KeyEscape)
}
