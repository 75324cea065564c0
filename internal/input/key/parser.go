package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Backspace", "PageDown", "Up", "Space", "Tab"
//   - Control keys: "Ctrl+S", "C-s", "^S"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if letter, ok := ctrlLetter(spec); ok {
		if !isCtrlable(letter) {
			return Event{}, fmt.Errorf("%w: %q cannot be combined with Ctrl", ErrInvalidSpec, spec)
		}
		return CtrlChar(letter), nil
	}

	if len(spec) == 1 {
		return Char(spec[0]), nil
	}

	switch strings.ToLower(spec) {
	case "space":
		return Char(' '), nil
	case "tab":
		return Char('\t'), nil
	}
	if k := KeyFromName(spec); k != KeyNone {
		return Special(k), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
}

// ctrlLetter extracts the letter of a control key specification.
func ctrlLetter(spec string) (byte, bool) {
	lower := strings.ToLower(spec)
	for _, prefix := range []string{"ctrl+", "ctrl-", "c-", "^"} {
		if rest, ok := strings.CutPrefix(lower, prefix); ok && len(rest) == 1 {
			return rest[0], true
		}
	}
	return 0, false
}

func isCtrlable(c byte) bool {
	return (c >= 'a' && c <= 'z') || strings.IndexByte("@[\\]^_", c) >= 0
}

// MustParse is like Parse but panics on error.
// Use only for known-valid key specifications.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key.MustParse(%q): %v", spec, err))
	}
	return ev
}
