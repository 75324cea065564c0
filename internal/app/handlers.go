package app

import (
	"context"
	"errors"

	"github.com/dshills/pickle/internal/input/key"
	"github.com/dshills/pickle/internal/project/vfs"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

const (
	quitWarning  = "Warning! File has unsaved changes -- Press Ctrl-Q %d more times to quit"
	saveAsPrompt = "Save as: %s (Press 'ESC' to cancel)"
	searchPrompt = "Search: %s (Use ESC/Arrows/Enter)"
)

// processKey applies one key. It returns ErrQuit when the editor should
// exit.
func (app *Application) processKey(ctx context.Context, ev key.Event) error {
	app.metrics.RecordKey()

	action := app.keymap.Lookup(ev)
	if action == ActionQuit {
		return app.quit()
	}
	app.quitRemaining = app.cfg.Editor.QuitTimes

	switch action {
	case ActionInsert:
		app.insertChar(ev.Char)
	case ActionNewline:
		app.insertNewline()
	case ActionDeleteLeft:
		app.deleteLeft()
	case ActionDeleteRight:
		app.vp.Move(app.doc, viewport.Right)
		app.deleteLeft()
	case ActionCursorUp:
		app.vp.Move(app.doc, viewport.Up)
	case ActionCursorDown:
		app.vp.Move(app.doc, viewport.Down)
	case ActionCursorLeft:
		app.vp.Move(app.doc, viewport.Left)
	case ActionCursorRight:
		app.vp.Move(app.doc, viewport.Right)
	case ActionLineStart:
		app.vp.Home()
	case ActionLineEnd:
		app.vp.End(app.doc)
	case ActionPageUp:
		app.vp.PageUp(app.doc)
	case ActionPageDown:
		app.vp.PageDown(app.doc)
	case ActionSave:
		return app.save(ctx)
	case ActionFind:
		return app.find(ctx)
	}
	return nil
}

// quit exits at once for a clean document. With unsaved changes the quit
// key must be pressed QuitTimes times in a row.
func (app *Application) quit() error {
	if app.doc.IsDirty() {
		app.quitRemaining--
		if app.quitRemaining > 0 {
			app.msg.Set(quitWarning, app.quitRemaining)
			return nil
		}
		app.logger.Warn("quit discarding %d unsaved changes", app.doc.Dirty())
	}
	return ErrQuit
}

func (app *Application) insertChar(c byte) {
	cx, cy := app.vp.Cursor()
	app.doc.InsertChar(cy, cx, c)
	app.vp.SetCursor(cx+1, cy)
}

func (app *Application) insertNewline() {
	cx, cy := app.vp.Cursor()
	app.doc.SplitRowAt(cy, cx)
	app.vp.SetCursor(0, cy+1)
}

// deleteLeft removes the byte before the cursor, joining the row with the
// previous one at column 0.
func (app *Application) deleteLeft() {
	cx, cy := app.vp.Cursor()
	if cy >= app.doc.NumRows() || (cx == 0 && cy == 0) {
		return
	}
	if cx > 0 {
		app.doc.DeleteChar(cy, cx-1)
		app.vp.SetCursor(cx-1, cy)
		return
	}
	if col, ok := app.doc.JoinWithPrevious(cy); ok {
		app.vp.SetCursor(col, cy-1)
	}
}

// save writes the document to its file, asking for a name first when it
// has none. A failed write is reported in the message bar and leaves the
// document dirty.
func (app *Application) save(ctx context.Context) error {
	if app.doc.Filename() == "" {
		name, err := app.prompt(ctx, saveAsPrompt, PromptSaveAs)
		if errors.Is(err, ErrPromptCancelled) {
			app.msg.Set("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		app.doc.SetFilename(name)
		app.logSyntax()
	}

	n, err := app.writeDocument()
	app.metrics.RecordSave(n, err)
	if err != nil {
		app.logger.Error("%v", err)
		app.msg.Set("Can't save! I/O error: %v", errors.Unwrap(err))
		return nil
	}
	app.doc.MarkClean()
	app.logger.WithField("bytes", n).Info("saved %s", app.doc.Filename())
	app.msg.Set("%d bytes written to disk", n)
	return nil
}

func (app *Application) writeDocument() (int, error) {
	name := app.doc.Filename()
	if name == "" {
		return 0, NewOperationError("save", "", ErrNoFilename)
	}
	n, err := vfs.WriteAll(app.fs, name, app.doc.Bytes())
	if err != nil {
		return n, NewOperationError("save", name, err)
	}
	return n, nil
}

// find runs an incremental search from the cursor row. Cancelling puts
// the cursor and scroll position back; accepting leaves the cursor on the
// last match.
func (app *Application) find(ctx context.Context) error {
	saved := app.vp.Save()
	_, cy := app.vp.Cursor()
	app.search.Begin(cy)
	app.metrics.RecordSearch()

	_, err := app.prompt(ctx, searchPrompt, PromptSearch)
	if errors.Is(err, ErrPromptCancelled) {
		app.vp.Restore(saved)
		return nil
	}
	// Nothing stays overlaid when the prompt ends on a read error.
	app.search.Restore(app.doc)
	return err
}
