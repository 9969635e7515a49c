package hook

import (
	"errors"
	"fmt"
)

// Sentinel errors for hook lifecycle.
var (
	// ErrInstallFailed is returned when the OS rejects hook
	// registration. The engine degrades to inert hotkeys; the process
	// continues.
	ErrInstallFailed = errors.New("keyboard hook install failed")

	// ErrUninstallFailed is returned when hook removal fails. Logged,
	// non-fatal.
	ErrUninstallFailed = errors.New("keyboard hook uninstall failed")

	// ErrNoKeyboard is returned when no capturable keyboard device
	// exists (Linux evdev discovery).
	ErrNoKeyboard = errors.New("no keyboard device found")
)

// InstallError wraps a platform error from hook registration.
type InstallError struct {
	Err error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	return fmt.Sprintf("installing keyboard hook: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error { return e.Err }

// Is allows errors.Is to match InstallError with ErrInstallFailed.
func (e *InstallError) Is(target error) bool { return target == ErrInstallFailed }

// UninstallError wraps a platform error from hook removal.
type UninstallError struct {
	Err error
}

// Error implements the error interface.
func (e *UninstallError) Error() string {
	return fmt.Sprintf("uninstalling keyboard hook: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *UninstallError) Unwrap() error { return e.Err }

// Is allows errors.Is to match UninstallError with ErrUninstallFailed.
func (e *UninstallError) Is(target error) bool { return target == ErrUninstallFailed }
