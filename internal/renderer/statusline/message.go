package statusline

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// DefaultTimeout is how long a message stays visible.
const DefaultTimeout = 5 * time.Second

// Clock returns the current time.
type Clock func() time.Time

// Message is the transient text of the message bar. Expiry is checked when
// the text is read; nothing is scheduled.
type Message struct {
	text    string
	at      time.Time
	timeout time.Duration
	now     Clock
}

// NewMessage creates an empty message. A non-positive timeout uses
// DefaultTimeout and a nil clock uses time.Now.
func NewMessage(timeout time.Duration, now Clock) *Message {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Message{timeout: timeout, now: now}
}

// Set formats and shows a message, restarting the expiry.
func (m *Message) Set(format string, args ...any) {
	m.text = fmt.Sprintf(format, args...)
	m.at = m.now()
}

// Clear removes the message.
func (m *Message) Clear() {
	m.text = ""
	m.at = time.Time{}
}

// Text returns the message, or "" once it has expired.
func (m *Message) Text() string {
	if m.text == "" || m.now().Sub(m.at) >= m.timeout {
		return ""
	}
	return m.text
}

// Render returns the visible message clipped to width columns.
func (m *Message) Render(width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(m.Text(), width, "")
}
