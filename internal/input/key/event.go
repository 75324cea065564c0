package key

// Event is a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Char is the byte for KeyChar events.
	Char byte
}

// Special creates an event for a named key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Char creates an event for a byte.
func Char(c byte) Event {
	return Event{Key: KeyChar, Char: c}
}

// CtrlChar creates the event sent for Ctrl plus the given letter.
func CtrlChar(c byte) Event {
	return Char(Ctrl(c))
}

// IsChar returns true if this is a byte event.
func (e Event) IsChar() bool {
	return e.Key == KeyChar
}

// IsPrintable returns true for printable ASCII bytes.
func (e Event) IsPrintable() bool {
	return e.Key == KeyChar && e.Char >= ' ' && e.Char < 127
}

// IsCtrl returns true if this is Ctrl plus the given letter.
func (e Event) IsCtrl(c byte) bool {
	return e.Key == KeyChar && e.Char == Ctrl(c)
}

// String returns a canonical string representation, the same form Parse
// accepts.
func (e Event) String() string {
	if e.Key != KeyChar {
		return e.Key.String()
	}
	switch {
	case e.Char == ' ':
		return "Space"
	case e.Char == '\t':
		return "Tab"
	case e.Char < ' ':
		return "Ctrl+" + string(rune('@'+e.Char))
	case e.Char == 127:
		return "DEL"
	default:
		return string(rune(e.Char))
	}
}
