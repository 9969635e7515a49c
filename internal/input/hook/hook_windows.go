//go:build windows

package hook

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dshills/macrostorm/internal/input/key"
	"github.com/dshills/macrostorm/internal/input/synth"
)

const (
	whKeyboardLL = 13

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105
	wmQuit = 0x0012
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

// kbdllhookstruct mirrors KBDLLHOOKSTRUCT.
type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

// msg mirrors MSG for the message pump.
type msg struct {
	hwnd    uintptr
	message uint32
	wparam  uintptr
	lparam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// activeID is the handle id the trampoline dispatches to. Exactly one
// WH_KEYBOARD_LL hook exists per process.
var activeID atomic.Uint64

// keyDown tracks which virtual keys are currently held. Low-level hooks
// carry no auto-repeat flag, so a down for an already-down key is the
// repeat signal. Touched only on the hook thread.
var keyDown [256]bool

// hookTrampoline is the bare C-callable hook procedure. It is stateless:
// the owning adapter is resolved through the handle table on every call.
var hookTrampoline = windows.NewCallback(func(code, wparam, lparam uintptr) uintptr {
	if int32(code) >= 0 {
		kb := (*kbdllhookstruct)(unsafe.Pointer(lparam))
		down := wparam == wmKeyDown || wparam == wmSysKeyDown
		vk := kb.vkCode & 0xFF

		repeat := down && keyDown[vk]
		keyDown[vk] = down

		ev := KeyEvent{
			Code:     key.Code(kb.vkCode),
			Down:     down,
			Repeat:   repeat,
			Injected: kb.dwExtraInfo == synth.Sentinel,
		}
		if dispatch(activeID.Load(), ev).Swallow {
			return 1
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, code, wparam, lparam)
	return r
})

// winHook owns the hook handle and its message-loop thread.
type winHook struct {
	hhook    uintptr
	threadID uint32
	done     chan struct{}
}

// Install registers the low-level keyboard hook. The hook lives on a
// dedicated OS-locked thread pumping messages; the callback is invoked
// synchronously from that thread for every keyboard event system-wide.
func Install(cb Callback) (*Handle, error) {
	id := register(cb)
	w := &winHook{done: make(chan struct{})}
	ready := make(chan error, 1)

	go w.run(id, ready)

	if err := <-ready; err != nil {
		deregister(id)
		return nil, &InstallError{Err: err}
	}
	return &Handle{id: id, platform: w}, nil
}

// run owns the hook for its whole lifetime. SetWindowsHookExW and the
// message pump must share one thread.
func (w *winHook) run(id uint64, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	w.threadID = windows.GetCurrentThreadId()
	activeID.Store(id)

	h, _, err := procSetWindowsHookExW.Call(whKeyboardLL, hookTrampoline, 0, 0)
	if h == 0 {
		activeID.Store(0)
		ready <- err
		return
	}
	w.hhook = h
	ready <- nil

	var m msg
	for {
		r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) <= 0 {
			return
		}
	}
}

// uninstall removes the hook and stops the pump thread.
func (w *winHook) uninstall() error {
	activeID.Store(0)

	r, _, err := procUnhookWindowsHookEx.Call(w.hhook)

	if w.threadID != 0 {
		procPostThreadMessageW.Call(uintptr(w.threadID), wmQuit, 0, 0)
		<-w.done
	}

	if r == 0 {
		return &UninstallError{Err: err}
	}
	return nil
}
