package engine

import (
	"strings"
	"testing"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordClassified(true)
	m.RecordClassified(false)
	m.RecordEmitted()
	m.RecordDropped()
	m.RecordRunStarted()
	m.RecordRunCompleted()
	m.RecordRunDropped()
	m.RecordSynthesis()
	m.RecordSynthesis()
	m.RecordInjectionFailure()
	m.RecordConfigReload()

	snap := m.Snapshot()
	if snap.EventsClassified != 2 || snap.EventsSwallowed != 1 {
		t.Errorf("classified/swallowed = %d/%d, want 2/1", snap.EventsClassified, snap.EventsSwallowed)
	}
	if snap.EventsEmitted != 1 || snap.EventsDropped != 1 {
		t.Errorf("emitted/dropped = %d/%d, want 1/1", snap.EventsEmitted, snap.EventsDropped)
	}
	if snap.RunsStarted != 1 || snap.RunsCompleted != 1 || snap.RunsDropped != 1 {
		t.Errorf("runs = %d/%d/%d, want 1/1/1", snap.RunsStarted, snap.RunsCompleted, snap.RunsDropped)
	}
	if snap.KeysSynthesized != 2 || snap.InjectionFailures != 1 {
		t.Errorf("keys/failures = %d/%d, want 2/1", snap.KeysSynthesized, snap.InjectionFailures)
	}
	if snap.ConfigReloads != 1 {
		t.Errorf("reloads = %d, want 1", snap.ConfigReloads)
	}
}

func TestMetricsSnapshotString(t *testing.T) {
	m := NewMetrics()
	m.RecordSynthesis()

	s := m.Snapshot().String()
	if !strings.Contains(s, "keys=1") {
		t.Errorf("snapshot string = %q", s)
	}
}
