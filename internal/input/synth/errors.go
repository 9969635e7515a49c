package synth

import "errors"

// Sentinel errors for synthetic input.
var (
	// ErrInjectionFailed is returned when the platform rejects an
	// injected event. The failed step is skipped; sequences continue.
	ErrInjectionFailed = errors.New("input injection failed")

	// ErrUnsupportedKey is returned when a code has no platform mapping.
	ErrUnsupportedKey = errors.New("key has no platform mapping")
)
