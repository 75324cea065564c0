// Package main is the entry point for the Pickle editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/pickle/internal/app"
	"github.com/dshills/pickle/internal/config"
	"github.com/dshills/pickle/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options is the result of command line parsing.
type options struct {
	cfg         config.Config
	file        string
	showVersion bool
	showHelp    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid environment configuration: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("pickle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts, err := parseFlags(fs, args, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.showHelp {
		fs.Usage()
		return 0
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "Pickle %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	logger, closer, err := app.OpenLogFile(opts.cfg.Logging.File, app.ParseLogLevel(opts.cfg.Logging.Level))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	term := backend.NewTerminal(os.Stdin, os.Stdout)
	application, err := app.New(app.Options{
		Config:  &opts.cfg,
		Backend: term,
		Logger:  logger,
		Version: version,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.file != "" {
		if err := application.Open(opts.file); err != nil {
			logger.Error("%v", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = application.Run(ctx)
	// Restore the terminal before printing anything.
	term.Shutdown()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		logger.Info("terminated by signal")
		return 0
	default:
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// parseFlags applies command line flags on top of cfg, which holds the
// defaults and the environment.
func parseFlags(fs *flag.FlagSet, args []string, cfg config.Config) (options, error) {
	opts := options{cfg: cfg}

	fs.StringVar(&opts.cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.cfg.Logging.File, "log-file", cfg.Logging.File, "Write logs to this file")
	fs.IntVar(&opts.cfg.Editor.TabStop, "tab-stop", cfg.Editor.TabStop, "Columns per tab stop")
	fs.IntVar(&opts.cfg.Editor.QuitTimes, "quit-times", cfg.Editor.QuitTimes, "Ctrl-Q presses needed to quit with unsaved changes")
	fs.DurationVar(&opts.cfg.UI.MessageTimeout, "message-timeout", cfg.UI.MessageTimeout, "How long status messages stay visible")
	fs.BoolVar(&opts.cfg.UI.TrueColor, "truecolor", cfg.UI.TrueColor, "Use 24-bit color escapes")
	fs.StringVar(&opts.cfg.UI.Colors, "colors", cfg.UI.Colors, "Theme overrides, e.g. comment=#5f8787,keyword1=yellow")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Pickle - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: pickle [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nKeys: Ctrl-S save, Ctrl-Q quit, Ctrl-F find\n")
		fmt.Fprintf(out, "Settings can also come from %sTAB_STOP, %sQUIT_TIMES, %sLOG_LEVEL, %sLOG_FILE,\n",
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(out, "%sMESSAGE_TIMEOUT, %sTRUECOLOR and %sCOLORS.\n",
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, fmt.Errorf("only one file can be edited at a time, got %d", fs.NArg())
	}

	if err := opts.cfg.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
