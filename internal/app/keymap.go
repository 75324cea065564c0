package app

import (
	"fmt"

	"github.com/dshills/pickle/internal/input/key"
)

// Action names a command a key can be bound to.
type Action string

// Actions.
const (
	ActionNone        Action = ""
	ActionInsert      Action = "editor.insert"
	ActionNewline     Action = "editor.newline"
	ActionDeleteLeft  Action = "editor.deleteLeft"
	ActionDeleteRight Action = "editor.deleteRight"
	ActionCursorUp    Action = "cursor.up"
	ActionCursorDown  Action = "cursor.down"
	ActionCursorLeft  Action = "cursor.left"
	ActionCursorRight Action = "cursor.right"
	ActionLineStart   Action = "cursor.lineStart"
	ActionLineEnd     Action = "cursor.lineEnd"
	ActionPageUp      Action = "view.pageUp"
	ActionPageDown    Action = "view.pageDown"
	ActionSave        Action = "file.save"
	ActionFind        Action = "search.find"
	ActionQuit        Action = "app.quit"
	ActionIgnore      Action = "app.ignore"
)

// Binding maps a key specification, as accepted by key.Parse, to an action.
type Binding struct {
	Keys   string
	Action Action
}

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{"Ctrl+Q", ActionQuit},
		{"Ctrl+S", ActionSave},
		{"Ctrl+F", ActionFind},
		{"Enter", ActionNewline},
		{"Backspace", ActionDeleteLeft},
		{"Ctrl+H", ActionDeleteLeft},
		{"Delete", ActionDeleteRight},
		{"Up", ActionCursorUp},
		{"Down", ActionCursorDown},
		{"Left", ActionCursorLeft},
		{"Right", ActionCursorRight},
		{"Home", ActionLineStart},
		{"End", ActionLineEnd},
		{"PageUp", ActionPageUp},
		{"PageDown", ActionPageDown},
		{"Ctrl+L", ActionIgnore},
		{"Escape", ActionIgnore},
	}
}

// Keymap resolves key events to actions.
type Keymap struct {
	bindings map[key.Event]Action
}

// NewKeymap builds a keymap. A later binding for the same key replaces an
// earlier one.
func NewKeymap(bindings []Binding) (*Keymap, error) {
	km := &Keymap{bindings: make(map[key.Event]Action, len(bindings))}
	for _, b := range bindings {
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		km.bindings[ev] = b.Action
	}
	return km, nil
}

// Lookup returns the action bound to ev. Unbound bytes insert themselves;
// other unbound keys do nothing.
func (km *Keymap) Lookup(ev key.Event) Action {
	if a, ok := km.bindings[ev]; ok {
		return a
	}
	if ev.IsChar() {
		return ActionInsert
	}
	return ActionNone
}
