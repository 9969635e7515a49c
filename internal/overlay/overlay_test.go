package overlay

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/macrostorm/internal/logging"
)

func newCapture(t *testing.T) (*LogNotifier, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelDebug
	cfg.Output = &buf
	return NewLogNotifier(logging.New(cfg)), &buf
}

func TestLogNotifierEnabledChanged(t *testing.T) {
	n, buf := newCapture(t)

	n.EnabledChanged(true)
	if !strings.Contains(buf.String(), "macros enabled") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	n.EnabledChanged(false)
	if !strings.Contains(buf.String(), "macros disabled") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogNotifierRunFinished(t *testing.T) {
	n, buf := newCapture(t)

	n.RunFinished("F2", nil)
	if !strings.Contains(buf.String(), "F2") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	n.RunFinished("F2", errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewLogNotifierNilLogger(t *testing.T) {
	n := NewLogNotifier(nil)
	n.EnabledChanged(true)
	n.RunFinished("F2", nil)
}
