package app

import "io"

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit hotkey file path. Empty means the
	// search order: working directory, then next to the executable.
	ConfigPath string

	// SettingsPath is an explicit settings file path. Empty means
	// settings.toml in the working directory; a missing file is fine.
	SettingsPath string

	// LogLevel overrides the settings file when non-empty.
	LogLevel string

	// Debug forces debug logging regardless of other sources.
	Debug bool

	// LogOutput overrides the log destination. Defaults to stderr.
	LogOutput io.Writer
}
