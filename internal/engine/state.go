package engine

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/macrostorm/internal/config"
	"github.com/dshills/macrostorm/internal/overlay"
)

// Phase is the engine's mutual-exclusion state.
type Phase int32

const (
	// PhaseIdle means no macro body is running.
	PhaseIdle Phase = iota
	// PhaseExecuting means exactly one macro body is in flight.
	PhaseExecuting
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExecuting:
		return "executing"
	default:
		return "unknown"
	}
}

// State is the engine's shared mutable state: the macro toggle, the
// execution phase, and the config snapshot. The toggle and phase are
// atomics readable from inside the hook callback; the snapshot sits
// behind a read lock held only long enough to copy the pointer. Nothing
// here is held across a sleep or an injection call.
type State struct {
	enabled atomic.Bool
	phase   atomic.Int32

	mu  sync.RWMutex
	cfg *config.Config

	notifier overlay.Notifier
}

// NewState creates engine state with the given initial snapshot, which
// may be nil. The toggle starts enabled.
func NewState(cfg *config.Config, notifier overlay.Notifier) *State {
	if notifier == nil {
		notifier = overlay.NopNotifier{}
	}
	s := &State{cfg: cfg, notifier: notifier}
	s.enabled.Store(true)
	return s
}

// Enabled reports the macro toggle.
func (s *State) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled flips the macro toggle. The overlay is notified on every
// actual change, fire and forget; a disabled engine keeps its hook
// installed and keeps any in-flight run going.
func (s *State) SetEnabled(enabled bool) {
	if s.enabled.Swap(enabled) == enabled {
		return
	}
	go s.notifier.EnabledChanged(enabled)
}

// Phase returns the current execution phase.
func (s *State) Phase() Phase {
	return Phase(s.phase.Load())
}

// BeginRun attempts the Idle to Executing transition. It returns false
// when a run is already in flight; the caller drops the event silently.
// This compare-and-swap is the authoritative at-most-one-run guarantee.
func (s *State) BeginRun() bool {
	return s.phase.CompareAndSwap(int32(PhaseIdle), int32(PhaseExecuting))
}

// EndRun attempts the Executing to Idle transition. It returns false
// when the engine was already idle.
func (s *State) EndRun() bool {
	return s.phase.CompareAndSwap(int32(PhaseExecuting), int32(PhaseIdle))
}

// AbortRun forces the phase back to Idle. Used when a run fails before
// any synthesis happened, so a missing symmetric release cannot leave
// the engine stuck in Executing.
func (s *State) AbortRun() {
	s.phase.Store(int32(PhaseIdle))
}

// Config returns the current snapshot, which may be nil.
func (s *State) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig swaps the snapshot wholesale. Readers see either the old or
// the new snapshot, never a mixture.
func (s *State) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}
