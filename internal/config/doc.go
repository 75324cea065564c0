// Package config provides the settings of the editor.
//
// There are no configuration files. Settings are resolved in layers, higher
// layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← PICKLE_*
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Environment
//
//	PICKLE_TAB_STOP          columns per tab stop (default 8)
//	PICKLE_QUIT_TIMES        extra Ctrl-Q presses to quit with unsaved changes (default 2)
//	PICKLE_MESSAGE_TIMEOUT   how long status messages stay visible, e.g. "5s" (default 5s)
//	PICKLE_LOG_LEVEL         debug, info, warn or error (default info)
//	PICKLE_LOG_FILE          log destination; logging is off without one
//	PICKLE_TRUECOLOR         emit 24-bit color escapes (default: COLORTERM)
//	PICKLE_COLORS            color overrides, e.g. "comment=#5f8787,number=red"
//
// # Basic Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	theme, err := cfg.Theme()
package config
