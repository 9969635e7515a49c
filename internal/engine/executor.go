package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/macrostorm/internal/action"
	"github.com/dshills/macrostorm/internal/config"
	"github.com/dshills/macrostorm/internal/input/key"
	"github.com/dshills/macrostorm/internal/input/synth"
	"github.com/dshills/macrostorm/internal/logging"
	"github.com/dshills/macrostorm/internal/overlay"
)

// gamepadPrefix namespaces controller bindings so "A" the key and "A"
// the button can coexist in one config.
const gamepadPrefix = "GP:"

// defaultCharDelay applies when a text body specifies no delay.
const defaultCharDelay = 10 * time.Millisecond

// Executor is the single consumer of the event channel. It owns the
// phase transitions, resolves hotkeys against the current snapshot, and
// runs the action interpreters. All sleeping happens on this goroutine,
// never in the hook callback.
type Executor struct {
	state    *State
	synth    synth.Synthesizer
	events   <-chan Event
	log      *logging.Logger
	metrics  *Metrics
	notifier overlay.Notifier
	scripts  *action.ScriptRunner

	// sleep is swappable so timing tests run on a virtual clock.
	sleep func(time.Duration)

	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewExecutor creates an executor draining the given channel.
func NewExecutor(state *State, s synth.Synthesizer, events <-chan Event, log *logging.Logger, metrics *Metrics, notifier overlay.Notifier) *Executor {
	if log == nil {
		log = logging.NullLogger
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if notifier == nil {
		notifier = overlay.NopNotifier{}
	}
	e := &Executor{
		state:    state,
		synth:    s,
		events:   events,
		log:      log,
		metrics:  metrics,
		notifier: notifier,
		sleep:    time.Sleep,
		quit:     make(chan struct{}),
	}
	e.scripts = action.NewScriptRunner(e, log.WithComponent("script"))
	return e
}

// Start launches the consumer goroutine.
func (e *Executor) Start() {
	e.wg.Add(1)
	go e.run()
}

// Close stops the executor after any in-flight run completes.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
		e.wg.Wait()
	})
}

func (e *Executor) run() {
	defer e.wg.Done()
	for {
		select {
		case <-e.quit:
			return
		case ev, ok := <-e.events:
			if !ok {
				return
			}
			e.handle(ev)
		}
	}
}

// handle processes one event in arrival order.
func (e *Executor) handle(ev Event) {
	if !ev.Press {
		// A release returns the engine to idle. Releases are honored
		// even with the toggle off so a run started before a disable
		// still unwinds.
		if !e.state.EndRun() {
			e.log.Debug("release of %q with no run in flight", ev.Name)
		}
		return
	}

	if !e.state.Enabled() {
		e.log.Debug("macros disabled, dropping press of %q", ev.Name)
		return
	}

	// The compare-and-swap here is the authoritative at-most-one-run
	// guarantee. The classifier's phase check only bounds channel depth;
	// gamepad events never saw the classifier at all.
	if !e.state.BeginRun() {
		e.metrics.RecordRunDropped()
		e.log.Debug("run in flight, dropping press of %q", ev.Name)
		return
	}
	e.metrics.RecordRunStarted()

	name := ev.Name
	if ev.Source == SourceGamepad {
		name = gamepadPrefix + name
	}

	hk, err := e.resolve(name)
	if err != nil {
		// Nothing was synthesized yet, so reset the phase here instead
		// of waiting on a symmetric release that may never arrive.
		e.state.AbortRun()
		e.log.Warn("%v", err)
		return
	}

	runID := uuid.NewString()[:8]
	e.log.Info("run %s: %q -> %s", runID, hk.Key, hk.Action)

	runErr := e.dispatch(hk)
	if runErr != nil {
		e.state.AbortRun()
		e.log.Warn("run %s: %v", runID, runErr)
	} else {
		e.metrics.RecordRunCompleted()
		e.log.Debug("run %s: done", runID)
	}
	e.notifier.RunFinished(hk.Key, runErr)
}

// resolve looks the name up in the current snapshot.
func (e *Executor) resolve(name string) (*config.Hotkey, error) {
	cfg := e.state.Config()
	if cfg == nil {
		return nil, &ResolveError{Name: name, Err: ErrConfigMissing}
	}
	hk := cfg.FindHotkey(name)
	if hk == nil {
		return nil, &ResolveError{Name: name, Err: ErrHotkeyNotFound}
	}
	return hk, nil
}

// dispatch runs the hotkey's interpreter. A non-nil return means the
// run produced no synthesis; interpreter-internal failures are skipped
// and logged, never returned.
func (e *Executor) dispatch(hk *config.Hotkey) error {
	switch params := hk.Params.(type) {
	case *action.TypeText:
		e.typeText(params.Text, params.CharDelay())
	case *action.Sequence:
		e.runSequence(params)
	case *action.Script:
		if err := e.scripts.Run(params.Source); err != nil {
			e.log.Warn("hotkey %q: %v", hk.Key, err)
		}
	default:
		return &ResolveError{Name: hk.Key, Err: ErrUnknownAction}
	}
	return nil
}

// typeText synthesizes a press/release pair per character, sleeping the
// delay between each transition. Unsupported characters and injection
// failures skip that character and continue.
func (e *Executor) typeText(text string, delay time.Duration) {
	for _, r := range text {
		code, ok := key.FromChar(r)
		if !ok {
			e.log.Warn("%v, skipping", &CharError{Char: r})
			continue
		}
		if err := e.press(code); err != nil {
			e.log.Warn("%v, skipping character", err)
			continue
		}
		e.sleep(delay)
		if err := e.release(code); err != nil {
			e.log.Warn("%v", err)
		}
		e.sleep(delay)
	}
}

// runSequence walks the steps in order. A bad step is skipped; the
// sequence always runs to its end.
func (e *Executor) runSequence(seq *action.Sequence) {
	for i := range seq.Steps {
		step := &seq.Steps[i]
		switch step.Type {
		case action.StepKey:
			e.runKeyStep(step)
		case action.StepWait:
			e.sleep(time.Duration(step.Wait) * time.Millisecond)
		case action.StepText:
			e.typeText(step.Text, step.DelayDuration())
		default:
			e.log.Warn("unknown step type %q, skipping", step.Type)
		}
	}
}

// runKeyStep synthesizes one key step. Press and release sleep the
// optional delay after the event; a complete step holds the key for the
// delay between down and up.
func (e *Executor) runKeyStep(step *action.Step) {
	code, ok := key.Parse(step.Key)
	if !ok {
		e.log.Warn("unknown key %q, skipping step", step.Key)
		return
	}

	switch step.Action {
	case action.ActionPress:
		if err := e.press(code); err != nil {
			e.log.Warn("%v, skipping step", err)
			return
		}
		e.sleep(step.DelayDuration())
	case action.ActionRelease:
		if err := e.release(code); err != nil {
			e.log.Warn("%v, skipping step", err)
			return
		}
		e.sleep(step.DelayDuration())
	default: // complete
		if err := e.press(code); err != nil {
			e.log.Warn("%v, skipping step", err)
			return
		}
		e.sleep(step.DelayDuration())
		if err := e.release(code); err != nil {
			e.log.Warn("%v", err)
		}
	}
}

func (e *Executor) press(c key.Code) error {
	if err := e.synth.Press(c); err != nil {
		e.metrics.RecordInjectionFailure()
		return err
	}
	e.metrics.RecordSynthesis()
	return nil
}

func (e *Executor) release(c key.Code) error {
	if err := e.synth.Release(c); err != nil {
		e.metrics.RecordInjectionFailure()
		return err
	}
	e.metrics.RecordSynthesis()
	return nil
}

// TypeText implements action.Bridge for scripts. Zero delay means the
// default.
func (e *Executor) TypeText(text string, delay time.Duration) error {
	if delay <= 0 {
		delay = defaultCharDelay
	}
	e.typeText(text, delay)
	return nil
}

// Key implements action.Bridge. Unlike a sequence step, an unknown name
// is returned as an error so a script can pcall around it.
func (e *Executor) Key(name string, act action.KeyAction) error {
	code, ok := key.Parse(name)
	if !ok {
		return fmt.Errorf("unknown key %q", name)
	}
	switch act {
	case action.ActionPress:
		return e.press(code)
	case action.ActionRelease:
		return e.release(code)
	default:
		if err := e.press(code); err != nil {
			return err
		}
		return e.release(code)
	}
}

// Wait implements action.Bridge.
func (e *Executor) Wait(d time.Duration) {
	e.sleep(d)
}
