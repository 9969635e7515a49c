//go:build windows

package synth

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dshills/macrostorm/internal/input/key"
)

const (
	inputKeyboard = 1

	keyeventfKeyUp    = 0x0002
	keyeventfScancode = 0x0008

	mapvkVkToVsc = 0
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSendInput    = user32.NewProc("SendInput")
	procMapVirtualKw = user32.NewProc("MapVirtualKeyW")
)

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors INPUT for keyboard events on amd64: 4-byte type, 4 bytes
// of alignment padding, the 24-byte union member, then padding out to the
// 40-byte union size (MOUSEINPUT is the largest member).
type input struct {
	inputType uint32
	_         uint32
	ki        keybdInput
	_         [8]byte
}

// Sender issues SendInput calls tagged with the sentinel.
type Sender struct{}

// New returns the Windows synthesizer.
func New() (*Sender, error) {
	return &Sender{}, nil
}

// Press injects a key-down for the code.
func (s *Sender) Press(c key.Code) error {
	return s.send(c, true)
}

// Release injects a key-up for the code.
func (s *Sender) Release(c key.Code) error {
	return s.send(c, false)
}

// Close implements Synthesizer. SendInput holds no resources.
func (s *Sender) Close() error { return nil }

func (s *Sender) send(c key.Code, down bool) error {
	scan, _, _ := procMapVirtualKw.Call(uintptr(c), mapvkVkToVsc)

	var flags uint32
	if scan != 0 {
		flags |= keyeventfScancode
	}
	if !down {
		flags |= keyeventfKeyUp
	}

	in := input{
		inputType: inputKeyboard,
		ki: keybdInput{
			wVk:         uint16(c),
			wScan:       uint16(scan),
			dwFlags:     flags,
			dwExtraInfo: Sentinel,
		},
	}

	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n == 0 {
		return &InjectionError{Code: c, Down: down, Err: err}
	}
	return nil
}
