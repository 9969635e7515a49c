package engine

import (
	"time"

	"github.com/dshills/macrostorm/internal/config"
	"github.com/dshills/macrostorm/internal/input/gamepad"
	"github.com/dshills/macrostorm/internal/input/hook"
	"github.com/dshills/macrostorm/internal/input/synth"
	"github.com/dshills/macrostorm/internal/logging"
	"github.com/dshills/macrostorm/internal/overlay"
)

// channelSize bounds the event channel. Classifier rule ordering keeps
// the queue shallow during a run, so this is headroom, not backpressure.
const channelSize = 64

// Engine wires the classifier, executor, and shared state around one
// event channel. The hook callback and the forwarder hold send sides;
// the executor exclusively owns the receive side.
type Engine struct {
	state      *State
	events     chan Event
	classifier *Classifier
	executor   *Executor
	metrics    *Metrics
	log        *logging.Logger
}

// Option configures an Engine during creation.
type Option func(*engineConfig)

type engineConfig struct {
	log      *logging.Logger
	notifier overlay.Notifier
	metrics  *Metrics
	sleep    func(time.Duration)
}

// WithLogger sets the engine logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNotifier sets the overlay notifier.
func WithNotifier(n overlay.Notifier) Option {
	return func(c *engineConfig) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithMetrics sets a shared metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(c *engineConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// withSleep replaces the executor's clock. Tests only.
func withSleep(sleep func(time.Duration)) Option {
	return func(c *engineConfig) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// New creates an engine around a synthesizer and an initial config
// snapshot, which may be nil. Call Start to begin consuming events.
func New(s synth.Synthesizer, cfg *config.Config, opts ...Option) *Engine {
	ec := engineConfig{
		log:      logging.NullLogger,
		notifier: overlay.NopNotifier{},
		metrics:  NewMetrics(),
	}
	for _, opt := range opts {
		opt(&ec)
	}

	state := NewState(cfg, ec.notifier)
	events := make(chan Event, channelSize)

	e := &Engine{
		state:      state,
		events:     events,
		classifier: NewClassifier(state, events, ec.metrics),
		executor:   NewExecutor(state, s, events, ec.log.WithComponent("executor"), ec.metrics, ec.notifier),
		metrics:    ec.metrics,
		log:        ec.log,
	}
	if ec.sleep != nil {
		e.executor.sleep = ec.sleep
	}
	return e
}

// Start launches the executor.
func (e *Engine) Start() {
	e.executor.Start()
}

// Close stops the executor after any in-flight run completes. The hook
// must be uninstalled and the forwarder drained before calling Close.
func (e *Engine) Close() {
	e.executor.Close()
}

// Callback returns the hook callback bound to this engine's classifier.
func (e *Engine) Callback() hook.Callback {
	return e.classifier.Classify
}

// Forward attaches a gamepad event stream. The returned forwarder runs
// until the stream closes.
func (e *Engine) Forward(in <-chan gamepad.Event) *Forwarder {
	f := NewForwarder(in, e.events, e.log.WithComponent("forwarder"))
	f.Start()
	return f
}

// SetEnabled flips the macro toggle.
func (e *Engine) SetEnabled(enabled bool) {
	e.state.SetEnabled(enabled)
}

// Enabled reports the macro toggle.
func (e *Engine) Enabled() bool {
	return e.state.Enabled()
}

// SetConfig swaps the config snapshot wholesale.
func (e *Engine) SetConfig(cfg *config.Config) {
	e.state.SetConfig(cfg)
	e.metrics.RecordConfigReload()
}

// Metrics returns the engine's metrics tracker.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}
