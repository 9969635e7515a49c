package engine

import (
	"errors"
	"fmt"
)

// Engine errors. All of them are recovered locally in the executor and
// logged; none abort the engine.
var (
	// ErrConfigMissing indicates no config snapshot is loaded.
	ErrConfigMissing = errors.New("no config loaded")

	// ErrHotkeyNotFound indicates a pressed key has no binding in the
	// current config snapshot.
	ErrHotkeyNotFound = errors.New("hotkey not found")

	// ErrUnknownAction indicates a hotkey's action kind has no
	// interpreter.
	ErrUnknownAction = errors.New("unknown action kind")

	// ErrUnsupportedChar indicates a character outside the synthesizable
	// set. The character is skipped and the text continues.
	ErrUnsupportedChar = errors.New("unsupported character")
)

// ResolveError wraps a hotkey resolution failure with the name that
// failed to resolve.
type ResolveError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolving hotkey %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// CharError wraps an unsupported character in a type-text body.
type CharError struct {
	Char rune
}

// Error implements the error interface.
func (e *CharError) Error() string {
	return fmt.Sprintf("cannot synthesize character %q", e.Char)
}

// Is allows errors.Is to match CharError with ErrUnsupportedChar.
func (e *CharError) Is(target error) bool {
	return target == ErrUnsupportedChar
}
