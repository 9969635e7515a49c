package gamepad

import (
	"sync"
	"time"

	"github.com/dshills/macrostorm/internal/logging"
)

// Slots is the number of controller slots polled.
const Slots = 4

// DefaultInterval is the poll cycle, roughly 60 Hz.
const DefaultInterval = 16 * time.Millisecond

// Poller polls controller slots on a fixed cycle and emits button
// transitions. It runs until Close and is independent of keyboard state.
type Poller struct {
	dev      Device
	interval time.Duration
	log      *logging.Logger
	events   chan Event

	connected [Slots]bool
	prev      [Slots]uint16

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithLogger sets the poller's logger.
func WithLogger(l *logging.Logger) Option {
	return func(p *Poller) { p.log = l }
}

// NewPoller creates a poller over the given device.
func NewPoller(dev Device, opts ...Option) *Poller {
	p := &Poller{
		dev:      dev,
		interval: DefaultInterval,
		log:      logging.NullLogger,
		events:   make(chan Event, 64),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Events returns the transition channel. Closed when the poller stops.
func (p *Poller) Events() <-chan Event {
	return p.events
}

// Start begins polling.
func (p *Poller) Start() {
	p.wg.Add(1)
	go p.run()
}

// Close stops polling and closes the event channel.
func (p *Poller) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.wg.Wait()
		close(p.events)
	})
}

func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

// poll queries every slot once and emits transitions for changed bits.
// Connect and disconnect transitions reset the stored mask instead of
// emitting, so a controller unplugged mid-press does not produce phantom
// releases on reconnect.
func (p *Poller) poll() {
	for slot := 0; slot < Slots; slot++ {
		curr, ok := p.dev.State(slot)

		if ok != p.connected[slot] {
			p.connected[slot] = ok
			p.prev[slot] = 0
			if ok {
				p.log.Info("gamepad [%d] connected", slot)
			} else {
				p.log.Info("gamepad [%d] disconnected", slot)
			}
			continue
		}
		if !ok {
			continue
		}

		for _, tr := range Transitions(p.prev[slot], curr) {
			ev := Event{Slot: slot, Button: tr.Button, Pressed: tr.Pressed}
			select {
			case p.events <- ev:
			case <-p.closeCh:
				return
			}
		}
		p.prev[slot] = curr
	}
}
