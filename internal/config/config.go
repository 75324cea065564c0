package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dshills/pickle/internal/config/loader"
	"github.com/dshills/pickle/internal/renderer/highlight"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PICKLE_"

// Defaults.
const (
	DefaultTabStop        = 8
	DefaultQuitTimes      = 2
	DefaultMessageTimeout = 5 * time.Second
	DefaultLogLevel       = "info"
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the resolved settings.
type Config struct {
	Editor  EditorConfig
	UI      UIConfig
	Logging LoggingConfig
}

// EditorConfig contains editing behavior settings.
type EditorConfig struct {
	// TabStop is the number of columns per tab stop.
	TabStop int
	// QuitTimes is the number of Ctrl-Q presses needed to quit with
	// unsaved changes. 0 or 1 quits on the first press.
	QuitTimes int
}

// UIConfig contains display settings.
type UIConfig struct {
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration
	// TrueColor enables 24-bit color escapes for RGB theme colors.
	TrueColor bool
	// Colors holds theme overrides as "category=color" pairs.
	Colors string
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of LogLevels.
	Level string
	// File is the log destination. Empty disables logging.
	File string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabStop:   DefaultTabStop,
			QuitTimes: DefaultQuitTimes,
		},
		UI: UIConfig{
			MessageTimeout: DefaultMessageTimeout,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load returns the defaults overridden by the process environment. The
// result is validated.
func Load() (Config, error) {
	return LoadFrom(os.Environ)
}

// LoadFrom is Load with an explicit environment source.
func LoadFrom(environ func() []string) (Config, error) {
	cfg := Default()
	cfg.UI.TrueColor = detectTrueColor(environ())

	values, err := loader.NewEnvLoader(EnvPrefix).WithEnviron(environ).Load()
	if err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}
	if err := cfg.Apply(values); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// detectTrueColor reports whether COLORTERM advertises 24-bit color.
func detectTrueColor(env []string) bool {
	for _, kv := range env {
		name, value, _ := strings.Cut(kv, "=")
		if name == "COLORTERM" {
			v := strings.ToLower(value)
			return v == "truecolor" || v == "24bit"
		}
	}
	return false
}

// Apply sets the settings found in values, keyed by config path. Unknown
// paths are ignored. All type errors are reported together.
func (c *Config) Apply(values map[string]any) error {
	var errs []error
	set := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	for path, v := range values {
		switch path {
		case "editor.tabStop":
			set(assignInt(path, v, &c.Editor.TabStop))
		case "editor.quitTimes":
			set(assignInt(path, v, &c.Editor.QuitTimes))
		case "ui.messageTimeout":
			set(assignDuration(path, v, &c.UI.MessageTimeout))
		case "ui.trueColor":
			set(assignBool(path, v, &c.UI.TrueColor))
		case "ui.colors":
			set(assignString(path, v, &c.UI.Colors))
		case "logging.level":
			set(assignString(path, v, &c.Logging.Level))
		case "logging.file":
			set(assignString(path, v, &c.Logging.File))
		}
	}
	return errors.Join(errs...)
}

// Validate checks every setting and reports all failures together.
func (c Config) Validate() error {
	var errs []error
	if c.Editor.TabStop < 1 {
		errs = append(errs, &ValidationError{
			Path: "editor.tabStop", Message: "must be at least 1", Value: c.Editor.TabStop, Code: ErrCodeOutOfRange,
		})
	}
	if c.Editor.QuitTimes < 0 {
		errs = append(errs, &ValidationError{
			Path: "editor.quitTimes", Message: "must not be negative", Value: c.Editor.QuitTimes, Code: ErrCodeOutOfRange,
		})
	}
	if c.UI.MessageTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Path: "ui.messageTimeout", Message: "must be positive", Value: c.UI.MessageTimeout, Code: ErrCodeOutOfRange,
		})
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, &ValidationError{
			Path: "logging.level", Message: "must be one of " + strings.Join(LogLevels, ", "), Value: c.Logging.Level, Code: ErrCodeInvalidEnum,
		})
	}
	if _, err := highlight.ParseOverrides(c.UI.Colors); err != nil {
		errs = append(errs, &ValidationError{
			Path: "ui.colors", Message: err.Error(), Value: c.UI.Colors, Code: ErrCodePatternMismatch,
		})
	}
	return errors.Join(errs...)
}

// Theme builds the color theme: the default theme with the configured
// overrides and color depth.
func (c Config) Theme() (*highlight.Theme, error) {
	overrides, err := highlight.ParseOverrides(c.UI.Colors)
	if err != nil {
		return nil, err
	}
	return highlight.DefaultTheme().WithOverrides(overrides).WithTrueColor(c.UI.TrueColor), nil
}

func typeError(path string, v any, expected string) error {
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %T", expected, v),
		Value:   v,
		Code:    ErrCodeTypeMismatch,
	}
}

func assignInt(path string, v any, dst *int) error {
	i, ok := v.(int64)
	if !ok {
		return typeError(path, v, "integer")
	}
	*dst = int(i)
	return nil
}

// assignDuration accepts a duration or a whole number of seconds.
func assignDuration(path string, v any, dst *time.Duration) error {
	switch d := v.(type) {
	case time.Duration:
		*dst = d
	case int64:
		*dst = time.Duration(d) * time.Second
	default:
		return typeError(path, v, "duration")
	}
	return nil
}

// assignBool accepts a bool or the integers 0 and 1.
func assignBool(path string, v any, dst *bool) error {
	switch b := v.(type) {
	case bool:
		*dst = b
	case int64:
		if b != 0 && b != 1 {
			return typeError(path, v, "boolean")
		}
		*dst = b == 1
	default:
		return typeError(path, v, "boolean")
	}
	return nil
}

// assignString accepts any value; numbers and bools are formatted back.
func assignString(path string, v any, dst *string) error {
	switch s := v.(type) {
	case string:
		*dst = s
	case int64, bool, time.Duration:
		*dst = fmt.Sprint(s)
	default:
		return typeError(path, v, "string")
	}
	return nil
}
