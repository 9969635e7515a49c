package engine

import (
	"sync"

	"github.com/dshills/macrostorm/internal/input/gamepad"
	"github.com/dshills/macrostorm/internal/logging"
)

// Forwarder drains the gamepad poller's channel into the executor's.
// Controller events bypass the classifier entirely; the executor's phase
// check gates them. The forwarder exits when the poller closes its
// channel.
type Forwarder struct {
	in  <-chan gamepad.Event
	out chan<- Event
	log *logging.Logger

	wg sync.WaitGroup
}

// NewForwarder bridges a poller channel to the engine channel.
func NewForwarder(in <-chan gamepad.Event, out chan<- Event, log *logging.Logger) *Forwarder {
	if log == nil {
		log = logging.NullLogger
	}
	return &Forwarder{in: in, out: out, log: log}
}

// Start launches the bridge goroutine.
func (f *Forwarder) Start() {
	f.wg.Add(1)
	go f.run()
}

// Wait blocks until the input channel closes and the bridge drains.
func (f *Forwarder) Wait() {
	f.wg.Wait()
}

func (f *Forwarder) run() {
	defer f.wg.Done()
	for gev := range f.in {
		f.log.Debug("gamepad [%d] %s %s", gev.Slot, gev.Button, pressName(gev.Pressed))
		f.out <- Event{Source: SourceGamepad, Name: gev.Button, Press: gev.Pressed}
	}
}

func pressName(pressed bool) string {
	if pressed {
		return "pressed"
	}
	return "released"
}
