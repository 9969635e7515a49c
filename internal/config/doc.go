// Package config loads hotkey configuration and application settings.
//
// Hotkeys come from a YAML file and are held as an immutable snapshot:
// reloads replace the whole snapshot, never mutate it. App settings are
// a small optional TOML file. A file watcher provides best-effort live
// reload of the hotkey file.
package config
