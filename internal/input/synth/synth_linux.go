//go:build linux

package synth

import (
	"fmt"
	"syscall"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/dshills/macrostorm/internal/input/key"
)

// Sender injects key events through a dedicated uinput device.
//
// The sentinel tag has no field to travel in on Linux; identity of the
// source device serves instead. The hook adapter reads only the grabbed
// physical keyboard, so events written here can never re-enter the
// pipeline.
type Sender struct {
	dev *evdev.InputDevice
}

// New creates the uinput injection device.
func New() (*Sender, error) {
	caps := make([]evdev.EvCode, 0, 80)
	for c := key.Code(0); c < 0x100; c++ {
		if ev, ok := key.EvdevCode(c); ok {
			caps = append(caps, evdev.EvCode(ev))
		}
	}

	dev, err := evdev.CreateDevice("macrostorm-synth", evdev.InputID{
		BusType: 0x03,
		Vendor:  0x4d73,
		Product: 0x0001,
		Version: 1,
	}, map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: caps,
	})
	if err != nil {
		return nil, fmt.Errorf("creating uinput device: %w", err)
	}

	return &Sender{dev: dev}, nil
}

// Press injects a key-down for the code.
func (s *Sender) Press(c key.Code) error {
	return s.send(c, true)
}

// Release injects a key-up for the code.
func (s *Sender) Release(c key.Code) error {
	return s.send(c, false)
}

// Close destroys the uinput device.
func (s *Sender) Close() error {
	return s.dev.Close()
}

func (s *Sender) send(c key.Code, down bool) error {
	ev, ok := key.EvdevCode(c)
	if !ok {
		return &InjectionError{Code: c, Down: down, Err: ErrUnsupportedKey}
	}

	var value int32
	if down {
		value = 1
	}

	now := syscall.NsecToTimeval(time.Now().UnixNano())
	events := []*evdev.InputEvent{
		{Time: now, Type: evdev.EV_KEY, Code: evdev.EvCode(ev), Value: value},
		{Time: now, Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0},
	}
	for _, e := range events {
		if err := s.dev.WriteOne(e); err != nil {
			return &InjectionError{Code: c, Down: down, Err: err}
		}
	}
	return nil
}
