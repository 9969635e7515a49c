package engine

import (
	"github.com/dshills/macrostorm/internal/input/hook"
)

// Classifier decides, inside the hook callback, whether an event passes
// through to the focused application or is swallowed, and whether it
// becomes work for the executor. It must return quickly: reads are
// atomics and one short-held read lock, emits are non-blocking.
type Classifier struct {
	state   *State
	events  chan<- Event
	metrics *Metrics
}

// NewClassifier creates a classifier feeding the given channel.
func NewClassifier(state *State, events chan<- Event, metrics *Metrics) *Classifier {
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Classifier{state: state, events: events, metrics: metrics}
}

// Classify applies the decision table to one hook event.
//
// In order: injected events pass through untouched, breaking the
// synthesis feedback loop. A disabled engine passes everything through.
// Keys with no binding pass through. Auto-repeats of a held hotkey pass
// through so one physical press yields one macro. A press while a run
// is in flight is swallowed without emit, which bounds channel depth
// during a long macro. A press while idle is swallowed and emitted. A
// release during a run is swallowed and emitted so the executor can
// return to idle; any other release of a bound key is swallowed to keep
// the pair symmetric for the focused application.
func (c *Classifier) Classify(ev hook.KeyEvent) hook.Decision {
	d := c.classify(ev)
	c.metrics.RecordClassified(d.Swallow)
	return d
}

func (c *Classifier) classify(ev hook.KeyEvent) hook.Decision {
	if ev.Injected {
		return hook.Decision{}
	}
	if !c.state.Enabled() {
		return hook.Decision{}
	}

	cfg := c.state.Config()
	if cfg == nil {
		return hook.Decision{}
	}
	name := ev.Code.Name()
	if cfg.FindHotkey(name) == nil {
		return hook.Decision{}
	}

	if ev.Down {
		if ev.Repeat {
			return hook.Decision{}
		}
		if c.state.Phase() != PhaseIdle {
			return hook.Decision{Swallow: true}
		}
		c.emit(Event{Source: SourceKeyboard, Name: name, Press: true})
		return hook.Decision{Swallow: true}
	}

	if c.state.Phase() == PhaseExecuting {
		c.emit(Event{Source: SourceKeyboard, Name: name, Press: false})
	}
	return hook.Decision{Swallow: true}
}

// emit hands an event to the executor without blocking. The hook
// callback cannot wait on a full channel; classifier rule ordering keeps
// the channel shallow, so a drop here is exceptional and only counted.
func (c *Classifier) emit(ev Event) {
	select {
	case c.events <- ev:
		c.metrics.RecordEmitted()
	default:
		c.metrics.RecordDropped()
	}
}
