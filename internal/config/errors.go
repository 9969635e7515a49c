package config

import (
	"errors"
	"fmt"
)

// ErrLoadFailed is the sentinel for hotkey file load failures.
var ErrLoadFailed = errors.New("config load failed")

// LoadError wraps a read or parse failure of the hotkey file.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading config: %v", e.Err)
	}
	return fmt.Sprintf("loading config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }

// Is allows errors.Is to match LoadError with ErrLoadFailed.
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }
