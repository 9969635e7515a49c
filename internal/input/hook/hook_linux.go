//go:build linux

package hook

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/dshills/macrostorm/internal/input/key"
)

// linuxHook grabs the physical keyboard device and forwards pass-through
// events out a cloned uinput device. Reading only the grabbed physical
// device is what breaks the feedback loop here: nothing the engine
// injects can re-enter this loop, so events never carry an Injected mark.
type linuxHook struct {
	dev     *evdev.InputDevice
	forward *evdev.InputDevice
	once    sync.Once
	done    chan struct{}
}

// Install finds the first keyboard-capable evdev device, grabs it, and
// starts the read loop.
func Install(cb Callback) (*Handle, error) {
	path, err := findKeyboard()
	if err != nil {
		return nil, &InstallError{Err: err}
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, &InstallError{Err: fmt.Errorf("opening %s: %w", path, err)}
	}

	forward, err := evdev.CloneDevice("macrostorm-passthrough", dev)
	if err != nil {
		dev.Close()
		return nil, &InstallError{Err: fmt.Errorf("cloning %s: %w", path, err)}
	}

	if err := dev.Grab(); err != nil {
		forward.Close()
		dev.Close()
		return nil, &InstallError{Err: fmt.Errorf("grabbing %s: %w", path, err)}
	}

	id := register(cb)
	lh := &linuxHook{dev: dev, forward: forward, done: make(chan struct{})}
	go lh.run(id)

	return &Handle{id: id, platform: lh}, nil
}

// findKeyboard scans device paths for one that reports key and repeat
// capability and names itself a keyboard.
func findKeyboard() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("listing devices: %w", err)
	}

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		hasKey, hasRep := false, false
		for _, t := range dev.CapableTypes() {
			switch t {
			case evdev.EV_KEY:
				hasKey = true
			case evdev.EV_REP:
				hasRep = true
			}
		}

		name, nameErr := dev.Name()
		dev.Close()

		if !hasKey || !hasRep || nameErr != nil {
			continue
		}
		if !strings.Contains(strings.ToLower(name), "keyboard") {
			continue
		}
		return p.Path, nil
	}

	return "", ErrNoKeyboard
}

// run reads events until the device is closed.
func (l *linuxHook) run(id uint64) {
	defer close(l.done)

	for {
		ev, err := l.dev.ReadOne()
		if err != nil {
			return
		}

		if ev.Type != evdev.EV_KEY {
			l.forward.WriteOne(ev)
			continue
		}

		code, known := key.FromEvdev(uint16(ev.Code))
		ke := KeyEvent{
			Code:   code,
			Down:   ev.Value == 1 || ev.Value == 2,
			Repeat: ev.Value == 2,
		}
		if !known {
			// Unmapped key; pass through without classification.
			l.forward.WriteOne(ev)
			continue
		}

		if !dispatch(id, ke).Swallow {
			l.forward.WriteOne(ev)
		}
	}
}

// uninstall releases the grab and closes both devices.
func (l *linuxHook) uninstall() error {
	var err error
	l.once.Do(func() {
		if e := l.dev.Ungrab(); e != nil {
			err = e
		}
		l.dev.Close()
		<-l.done
		l.forward.Close()
	})
	if err != nil {
		return &UninstallError{Err: err}
	}
	return nil
}
