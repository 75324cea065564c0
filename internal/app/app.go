// Package app ties the editor together: it owns the document, the viewport
// and the status message, runs the key loop and carries out commands.
package app

import (
	"errors"
	"io/fs"
	"time"

	"github.com/dshills/pickle/internal/config"
	"github.com/dshills/pickle/internal/engine/buffer"
	"github.com/dshills/pickle/internal/engine/search"
	"github.com/dshills/pickle/internal/project/vfs"
	"github.com/dshills/pickle/internal/renderer"
	"github.com/dshills/pickle/internal/renderer/backend"
	"github.com/dshills/pickle/internal/renderer/statusline"
	"github.com/dshills/pickle/internal/renderer/viewport"
)

// Status bar and message bar rows below the text area.
const reservedRows = 2

// HelpMessage is shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Application is the editor state threaded through the event loop.
type Application struct {
	cfg      config.Config
	backend  backend.Backend
	fs       vfs.FS
	logger   *Logger
	clock    statusline.Clock
	renderer *renderer.Renderer
	keymap   *Keymap
	metrics  *Metrics

	doc    *buffer.Document
	vp     *viewport.Viewport
	msg    *statusline.Message
	search *search.Controller

	quitRemaining int
	width, height int
}

// Options configures the application.
type Options struct {
	// Config holds the resolved settings. The zero value means
	// config.Default().
	Config *config.Config

	// Backend is the terminal. Required.
	Backend backend.Backend

	// FS reads and writes files. Defaults to the OS file system.
	FS vfs.FS

	// Logger defaults to NullLogger.
	Logger *Logger

	// Clock drives message expiry and frame timing. Defaults to time.Now.
	Clock statusline.Clock

	// Bindings replaces the default key bindings when non-nil.
	Bindings []Binding

	// Version is shown in the welcome banner.
	Version string
}

// New creates an application with an empty, unnamed document.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, errors.New("app: backend is required")
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}

	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	km, err := NewKeymap(bindings)
	if err != nil {
		return nil, err
	}

	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	ropts := renderer.DefaultOptions()
	ropts.Theme = theme
	if opts.Version != "" {
		ropts.Version = opts.Version
	}

	app := &Application{
		cfg:           cfg,
		backend:       opts.Backend,
		fs:            opts.FS,
		logger:        opts.Logger.WithComponent("app"),
		clock:         opts.Clock,
		renderer:      renderer.New(ropts),
		keymap:        km,
		metrics:       NewMetrics(),
		doc:           buffer.NewDocument(buffer.WithTabStop(cfg.Editor.TabStop)),
		vp:            viewport.New(1, 1),
		msg:           statusline.NewMessage(cfg.UI.MessageTimeout, opts.Clock),
		search:        search.New(),
		quitRemaining: cfg.Editor.QuitTimes,
	}
	return app, nil
}

// Open loads the file at path into a fresh document. A file that does not
// exist yet gives an empty document carrying the name; any other read
// failure is returned.
func (app *Application) Open(path string) error {
	doc := buffer.NewDocument(
		buffer.WithTabStop(app.cfg.Editor.TabStop),
		buffer.WithFilename(path),
	)

	lines, err := vfs.ReadLines(app.fs, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		app.logger.Info("new file %s", path)
	case err != nil:
		return NewOperationError("open", path, err)
	default:
		doc.Load(lines)
		app.logger.WithField("rows", doc.NumRows()).Info("loaded %s", path)
	}

	app.doc = doc
	app.vp.SetCursor(0, 0)
	app.vp.SetRowOffset(0)
	app.logSyntax()
	return nil
}

// Document returns the document being edited.
func (app *Application) Document() *buffer.Document {
	return app.doc
}

// Viewport returns the cursor and scroll state.
func (app *Application) Viewport() *viewport.Viewport {
	return app.vp
}

// Message returns the visible status message.
func (app *Application) Message() string {
	return app.msg.Text()
}

// SetMessage sets the status message.
func (app *Application) SetMessage(format string, args ...any) {
	app.msg.Set(format, args...)
}

// Metrics returns the session counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

func (app *Application) logSyntax() {
	name := "none"
	if syn := app.doc.Syntax(); syn != nil {
		name = syn.FileType
	}
	app.logger.Debug("syntax %s for %q", name, app.doc.Filename())
}
