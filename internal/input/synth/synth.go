package synth

import (
	"fmt"

	"github.com/dshills/macrostorm/internal/input/key"
)

// Sentinel is the tag attached to every injected event. On Windows it
// travels in KBDLLHOOKSTRUCT.dwExtraInfo; the classifier drops any hook
// event carrying it.
const Sentinel uintptr = 0x12345678

// Synthesizer injects key transitions into the OS input stream.
//
// Implementations must tag injected events so the hook can tell them from
// hardware input. Injection failures are reported per call; callers skip
// the failed step and continue.
type Synthesizer interface {
	// Press injects a key-down for the code.
	Press(c key.Code) error
	// Release injects a key-up for the code.
	Release(c key.Code) error
	// Close releases any injection resources.
	Close() error
}

// InjectionError wraps a platform injection failure.
type InjectionError struct {
	Code key.Code
	Down bool
	Err  error
}

// Error implements the error interface.
func (e *InjectionError) Error() string {
	dir := "release"
	if e.Down {
		dir = "press"
	}
	return fmt.Sprintf("injecting %s of %s: %v", dir, e.Code.Name(), e.Err)
}

// Unwrap returns the underlying error.
func (e *InjectionError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match InjectionError with ErrInjectionFailed.
func (e *InjectionError) Is(target error) bool {
	return target == ErrInjectionFailed
}
