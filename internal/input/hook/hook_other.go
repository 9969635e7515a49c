//go:build !windows && !linux

package hook

// Install reports hook installation as unsupported on this platform. The
// caller logs and the engine runs with inert hotkeys.
func Install(cb Callback) (*Handle, error) {
	return nil, &InstallError{Err: ErrInstallFailed}
}
