// Package overlay surfaces macro engine state changes to the user.
//
// The engine reports toggle flips and run outcomes through a Notifier.
// The default implementation writes to the application log; a windowed
// on-screen indicator can be dropped in behind the same interface.
package overlay

import "github.com/dshills/macrostorm/internal/logging"

// Notifier receives user-visible engine state changes.
type Notifier interface {
	// EnabledChanged is called when the macro toggle flips.
	EnabledChanged(enabled bool)

	// RunFinished is called after a macro run completes or fails.
	RunFinished(hotkey string, err error)
}

// LogNotifier reports state changes through the application log.
type LogNotifier struct {
	log *logging.Logger
}

// NewLogNotifier returns a Notifier backed by the given logger.
func NewLogNotifier(l *logging.Logger) *LogNotifier {
	if l == nil {
		l = logging.NullLogger
	}
	return &LogNotifier{log: l}
}

// EnabledChanged implements Notifier.
func (n *LogNotifier) EnabledChanged(enabled bool) {
	if enabled {
		n.log.Info("macros enabled")
	} else {
		n.log.Info("macros disabled")
	}
}

// RunFinished implements Notifier.
func (n *LogNotifier) RunFinished(hotkey string, err error) {
	if err != nil {
		n.log.Warn("macro %q finished with error: %v", hotkey, err)
		return
	}
	n.log.Debug("macro %q finished", hotkey)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// EnabledChanged implements Notifier.
func (NopNotifier) EnabledChanged(bool) {}

// RunFinished implements Notifier.
func (NopNotifier) RunFinished(string, error) {}
