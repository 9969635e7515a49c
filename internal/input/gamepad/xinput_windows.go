//go:build windows

package gamepad

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// xinputGamepad mirrors XINPUT_GAMEPAD.
type xinputGamepad struct {
	wButtons      uint16
	bLeftTrigger  byte
	bRightTrigger byte
	sThumbLX      int16
	sThumbLY      int16
	sThumbRX      int16
	sThumbRY      int16
}

// xinputState mirrors XINPUT_STATE.
type xinputState struct {
	dwPacketNumber uint32
	gamepad        xinputGamepad
}

// XInput is the Windows controller device.
type XInput struct {
	getState *windows.LazyProc
}

// NewDevice loads the XInput DLL. Newer DLL names are preferred; the
// legacy redistributable name is the fallback.
func NewDevice() Device {
	for _, name := range []string{"xinput1_4.dll", "xinput1_3.dll", "xinput9_1_0.dll"} {
		dll := windows.NewLazySystemDLL(name)
		if dll.Load() == nil {
			return &XInput{getState: dll.NewProc("XInputGetState")}
		}
	}
	return disconnectedDevice{}
}

// State implements Device.
func (x *XInput) State(slot int) (uint16, bool) {
	var st xinputState
	r, _, _ := x.getState.Call(uintptr(slot), uintptr(unsafe.Pointer(&st)))
	if r != 0 { // ERROR_SUCCESS is 0; anything else means not connected
		return 0, false
	}
	return st.gamepad.wButtons, true
}
