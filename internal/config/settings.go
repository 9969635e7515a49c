package config

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultSettingsName is the settings file looked up next to the hotkey
// file when no path is given.
const DefaultSettingsName = "settings.toml"

// Settings are optional application-level knobs, separate from hotkey
// bindings. A missing settings file is not an error; defaults apply.
type Settings struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// GamepadPollMS is the controller poll interval in milliseconds.
	GamepadPollMS int64 `toml:"gamepad_poll_ms"`

	// Enabled is the initial macro toggle state.
	Enabled bool `toml:"enabled"`

	// WatchConfig enables live reload of the hotkey file.
	WatchConfig bool `toml:"watch_config"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:      "info",
		GamepadPollMS: 16,
		Enabled:       true,
		WatchConfig:   true,
	}
}

// GamepadPollInterval returns the poll interval as a duration.
func (s Settings) GamepadPollInterval() time.Duration {
	if s.GamepadPollMS <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(s.GamepadPollMS) * time.Millisecond
}

// LoadSettings reads the TOML settings file. A missing file returns the
// defaults, not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, &LoadError{Path: path, Err: err}
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), &LoadError{Path: path, Err: err}
	}
	return s, nil
}
