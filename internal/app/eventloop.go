package app

import (
	"context"
	"errors"

	"github.com/dshills/pickle/internal/input/key"
	"github.com/dshills/pickle/internal/renderer"
)

// Run draws a frame, waits for a key and applies it, until the user quits
// or a fatal error occurs. Quitting clears the screen and returns nil.
//
// The caller owns the terminal: it calls Init on the backend before Run
// and Shutdown afterwards.
func (app *Application) Run(ctx context.Context) error {
	app.msg.Set(HelpMessage)

	for {
		if err := app.refresh(); err != nil {
			return err
		}

		ev, err := app.backend.ReadKey(ctx)
		if err != nil {
			return NewOperationError("read key", "", err)
		}

		err = app.processKey(ctx, ev)
		if errors.Is(err, ErrQuit) {
			app.logger.WithField("metrics", app.metrics.Snapshot()).Info("quit")
			if werr := app.backend.Write(renderer.ClearScreen()); werr != nil {
				return NewOperationError("write", "", werr)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// refresh resizes the viewport to the terminal and writes one frame.
func (app *Application) refresh() error {
	start := app.clock()

	w, h, err := app.backend.Size()
	if err != nil {
		return NewOperationError("query size", "", err)
	}
	if w != app.width || h != app.height {
		app.logger.Debug("resize %dx%d", w, h)
		app.width, app.height = w, h
		app.vp.Resize(h-reservedRows, w)
	}

	frame := app.renderer.Compose(app.doc, app.vp, app.msg)
	if err := app.backend.Write(frame); err != nil {
		return NewOperationError("write", "", err)
	}

	app.metrics.RecordFrame(app.clock().Sub(start))
	return nil
}

// PromptPurpose selects what a prompt does after every keystroke.
type PromptPurpose int

const (
	// PromptNone only edits the input.
	PromptNone PromptPurpose = iota
	// PromptSearch runs an incremental search step.
	PromptSearch
	// PromptSaveAs asks for a file name.
	PromptSaveAs
)

// prompt reads a line of input in the message bar. format is shown with
// the current input in place of its %s verb.
//
// Backspace, Delete and Ctrl-H remove the last byte. Enter accepts a
// non-empty input. Escape returns ErrPromptCancelled. Printable bytes are
// appended. After every key the purpose's step runs with the input and
// the key.
func (app *Application) prompt(ctx context.Context, format string, purpose PromptPurpose) (string, error) {
	var input []byte

	for {
		app.msg.Set(format, input)
		if err := app.refresh(); err != nil {
			return "", err
		}

		ev, err := app.backend.ReadKey(ctx)
		if err != nil {
			return "", NewOperationError("read key", "", err)
		}
		app.metrics.RecordKey()

		done, cancelled := false, false
		switch {
		case ev.Key == key.KeyBackspace || ev.Key == key.KeyDelete || ev.IsCtrl('h'):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.Key == key.KeyEscape:
			app.msg.Clear()
			cancelled = true
		case ev.Key == key.KeyEnter:
			if len(input) > 0 {
				app.msg.Clear()
				done = true
			}
		case ev.IsPrintable():
			input = append(input, ev.Char)
		}

		app.promptStep(purpose, string(input), ev)

		if cancelled {
			return "", ErrPromptCancelled
		}
		if done {
			return string(input), nil
		}
	}
}

func (app *Application) promptStep(purpose PromptPurpose, input string, ev key.Event) {
	switch purpose {
	case PromptSearch:
		app.search.Update(app.doc, app.vp, input, ev)
	}
}
