package engine

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks engine throughput with lock-free counters. The
// classifier increments them from inside the hook callback, so nothing
// here may block.
type Metrics struct {
	eventsClassified atomic.Uint64
	eventsSwallowed  atomic.Uint64
	eventsEmitted    atomic.Uint64
	eventsDropped    atomic.Uint64

	runsStarted   atomic.Uint64
	runsCompleted atomic.Uint64
	runsDropped   atomic.Uint64

	keysSynthesized   atomic.Uint64
	injectionFailures atomic.Uint64

	configReloads atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordClassified records one hook event seen by the classifier.
func (m *Metrics) RecordClassified(swallowed bool) {
	m.eventsClassified.Add(1)
	if swallowed {
		m.eventsSwallowed.Add(1)
	}
}

// RecordEmitted records an event sent to the executor.
func (m *Metrics) RecordEmitted() {
	m.eventsEmitted.Add(1)
}

// RecordDropped records an event lost to a full channel.
func (m *Metrics) RecordDropped() {
	m.eventsDropped.Add(1)
}

// RecordRunStarted records a macro run entering Executing.
func (m *Metrics) RecordRunStarted() {
	m.runsStarted.Add(1)
}

// RecordRunCompleted records a macro run that dispatched to completion.
func (m *Metrics) RecordRunCompleted() {
	m.runsCompleted.Add(1)
}

// RecordRunDropped records a press dropped because a run was in flight.
func (m *Metrics) RecordRunDropped() {
	m.runsDropped.Add(1)
}

// RecordSynthesis records one injected key transition.
func (m *Metrics) RecordSynthesis() {
	m.keysSynthesized.Add(1)
}

// RecordInjectionFailure records a failed injection call.
func (m *Metrics) RecordInjectionFailure() {
	m.injectionFailures.Add(1)
}

// RecordConfigReload records a config snapshot swap.
func (m *Metrics) RecordConfigReload() {
	m.configReloads.Add(1)
}

// MetricsSnapshot is a point-in-time view of the counters.
type MetricsSnapshot struct {
	EventsClassified uint64
	EventsSwallowed  uint64
	EventsEmitted    uint64
	EventsDropped    uint64

	RunsStarted   uint64
	RunsCompleted uint64
	RunsDropped   uint64

	KeysSynthesized   uint64
	InjectionFailures uint64

	ConfigReloads uint64

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsClassified:  m.eventsClassified.Load(),
		EventsSwallowed:   m.eventsSwallowed.Load(),
		EventsEmitted:     m.eventsEmitted.Load(),
		EventsDropped:     m.eventsDropped.Load(),
		RunsStarted:       m.runsStarted.Load(),
		RunsCompleted:     m.runsCompleted.Load(),
		RunsDropped:       m.runsDropped.Load(),
		KeysSynthesized:   m.keysSynthesized.Load(),
		InjectionFailures: m.injectionFailures.Load(),
		ConfigReloads:     m.configReloads.Load(),
		Uptime:            time.Since(m.startTime),
	}
}

// String renders the snapshot for the shutdown stats line.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf(
		"uptime=%s events=%d swallowed=%d emitted=%d dropped=%d runs=%d/%d keys=%d inject_errs=%d reloads=%d",
		s.Uptime.Round(time.Second),
		s.EventsClassified, s.EventsSwallowed, s.EventsEmitted, s.EventsDropped,
		s.RunsCompleted, s.RunsStarted,
		s.KeysSynthesized, s.InjectionFailures, s.ConfigReloads,
	)
}
