package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, text string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("hotkeys:\n  - key: \"F2\"\n    action: \"type_text\"\n    params:\n      text: \""+text+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "one")

	got := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) { got <- c }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "two")

	select {
	case cfg := <-got:
		hk := cfg.FindHotkey("F2")
		if hk == nil {
			t.Fatal("reloaded config missing hotkey")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "one")

	got := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) { got <- c }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-got:
		t.Fatal("sibling file change triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherKeepsOldOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "one")

	got := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) { got <- c }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("hotkeys: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-got:
		t.Fatal("unparseable file produced a snapshot")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "one")

	w, err := NewWatcher(path, func(*Config) {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Close()
	w.Close()
}
