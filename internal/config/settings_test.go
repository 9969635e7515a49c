package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("missing settings file should not error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	src := []byte("log_level = \"debug\"\ngamepad_poll_ms = 8\nenabled = false\n")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.LogLevel != "debug" || s.GamepadPollMS != 8 || s.Enabled {
		t.Errorf("settings = %+v", s)
	}
	// Keys absent from the file keep their defaults.
	if !s.WatchConfig {
		t.Error("WatchConfig lost its default")
	}
}

func TestLoadSettingsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("log_level = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err == nil {
		t.Fatal("LoadSettings accepted malformed TOML")
	}
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("error does not match ErrLoadFailed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("settings after parse failure = %+v, want defaults", s)
	}
}

func TestGamepadPollInterval(t *testing.T) {
	tests := []struct {
		ms   int64
		want time.Duration
	}{
		{16, 16 * time.Millisecond},
		{100, 100 * time.Millisecond},
		{0, 16 * time.Millisecond},
		{-5, 16 * time.Millisecond},
	}
	for _, tt := range tests {
		s := Settings{GamepadPollMS: tt.ms}
		if got := s.GamepadPollInterval(); got != tt.want {
			t.Errorf("GamepadPollInterval(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}
