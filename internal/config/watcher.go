package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/macrostorm/internal/logging"
)

// defaultDebounce coalesces the bursts of writes editors produce when
// saving a file.
const defaultDebounce = 200 * time.Millisecond

// Watcher reloads the hotkey file when it changes on disk. Reload is
// best-effort: a file that no longer parses is logged and the previous
// snapshot stays live.
type Watcher struct {
	path     string
	onChange func(*Config)
	log      *logging.Logger
	debounce time.Duration

	fsw *fsnotify.Watcher

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) { w.log = l }
}

// WithDebounce overrides the reload debounce interval.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher watches the hotkey file at path and calls onChange with
// each successfully reloaded snapshot. The parent directory is watched
// rather than the file itself so editors that replace the file keep the
// watch alive.
func NewWatcher(path string, onChange func(*Config), opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		path:     path,
		onChange: onChange,
		log:      logging.NullLogger,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.fsw.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) run() {
	defer w.wg.Done()

	base := filepath.Base(w.path)
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		}
	}
}

// reload parses the file and hands the snapshot to the callback.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload rejected: %v", err)
		return
	}
	w.log.Info("config reloaded: %d hotkeys", len(cfg.Hotkeys))
	w.onChange(cfg)
}
