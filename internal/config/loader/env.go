// Package loader reads configuration values from the environment.
package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "PICKLE_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "PICKLE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable
// mappings and environment source. A nil environ reads the process
// environment.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string, environ func() []string) *EnvLoader {
	if environ == nil {
		environ = os.Environ
	}
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		environ: environ,
	}
}

// WithEnviron replaces the environment source, e.g. for tests.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	if environ != nil {
		l.environ = environ
	}
	return l
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "TAB_STOP":        "editor.tabStop",
		prefix + "QUIT_TIMES":      "editor.quitTimes",
		prefix + "MESSAGE_TIMEOUT": "ui.messageTimeout",
		prefix + "TRUECOLOR":       "ui.trueColor",
		prefix + "COLORS":          "ui.colors",
		prefix + "LOG_LEVEL":       "logging.level",
		prefix + "LOG_FILE":        "logging.file",
	}
}

// Load reads environment variables and returns a flat map from config path
// to parsed value. Prefixed variables without a mapping are returned under
// a path derived from their name (PICKLE_EDITOR_TAB_STOP -> editor.tabStop).
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		config[path] = ParseValue(value)
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts PICKLE_EDITOR_TAB_STOP to editor.tabStop.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		return strings.ToLower(name)
	}

	section := strings.ToLower(parts[0])
	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// ParseValue attempts to parse the string value into an appropriate type:
// bool words, then int64, then time.Duration, else the string itself.
func ParseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}
