//go:build !windows

package gamepad

// NewDevice returns a device with no controllers. Gamepad support is
// XInput-only; other platforms poll an always-empty device.
func NewDevice() Device {
	return disconnectedDevice{}
}
