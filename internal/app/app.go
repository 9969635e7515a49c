// Package app wires the macro engine together: settings, logging, the
// config snapshot and its watcher, the keyboard hook, the gamepad
// poller, and the executor. It manages the whole lifecycle from
// bootstrap to the shutdown stats line.
package app

import (
	"sync/atomic"

	"github.com/dshills/macrostorm/internal/config"
	"github.com/dshills/macrostorm/internal/engine"
	"github.com/dshills/macrostorm/internal/input/gamepad"
	"github.com/dshills/macrostorm/internal/input/hook"
	"github.com/dshills/macrostorm/internal/input/synth"
	"github.com/dshills/macrostorm/internal/logging"
	"github.com/dshills/macrostorm/internal/overlay"
)

// Application is the central coordinator for all macrostorm components.
type Application struct {
	opts     Options
	log      *logging.Logger
	settings config.Settings

	configPath string

	engine    *engine.Engine
	synth     synth.Synthesizer
	hook      *hook.Handle
	poller    *gamepad.Poller
	forwarder *engine.Forwarder
	watcher   *config.Watcher

	running atomic.Bool
}

// New builds the application. Missing settings and config files are
// warnings, not failures: the engine runs inert until a config appears
// via reload. Only an unusable logging setup fails construction.
func New(opts Options) (*Application, error) {
	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = config.DefaultSettingsName
	}
	settings, settingsErr := config.LoadSettings(settingsPath)

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(settings.LogLevel)
	if opts.LogLevel != "" {
		logCfg.Level = logging.ParseLevel(opts.LogLevel)
	}
	if opts.Debug {
		logCfg.Level = logging.LevelDebug
	}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	log := logging.New(logCfg)

	if settingsErr != nil {
		log.Warn("settings: %v, using defaults", settingsErr)
	}

	a := &Application{
		opts:     opts,
		log:      log,
		settings: settings,
	}

	cfg := a.loadConfig()

	syn, err := synth.New()
	if err != nil {
		log.Warn("input injection unavailable: %v", err)
		a.synth = inertSynth{}
	} else {
		a.synth = syn
	}

	a.engine = engine.New(a.synth, cfg,
		engine.WithLogger(log),
		engine.WithNotifier(overlay.NewLogNotifier(log.WithComponent("overlay"))),
	)
	a.engine.SetEnabled(settings.Enabled)

	return a, nil
}

// loadConfig resolves and parses the hotkey file, returning nil when no
// usable config exists.
func (a *Application) loadConfig() *config.Config {
	path, err := config.Locate(a.opts.ConfigPath)
	if err != nil {
		a.log.Warn("config: %v, hotkeys disabled until a config is loaded", err)
		return nil
	}
	a.configPath = path

	cfg, err := config.Load(path)
	if err != nil {
		a.log.Warn("config: %v, hotkeys disabled until a valid config is loaded", err)
		return nil
	}
	a.log.Info("config loaded: %s (%d hotkeys)", path, len(cfg.Hotkeys))
	return cfg
}

// Start brings up the hook, the gamepad poller, and the config watcher.
// Hook installation failure is non-fatal: the process keeps running
// inert so the tray and reload paths stay alive.
func (a *Application) Start() error {
	if !a.running.CompareAndSwap(false, true) {
		return nil
	}

	a.engine.Start()

	h, err := hook.Install(a.engine.Callback())
	if err != nil {
		a.log.Warn("keyboard hook unavailable, running inert: %v", err)
	} else {
		a.hook = h
		a.log.Info("keyboard hook installed")
	}

	a.poller = gamepad.NewPoller(gamepad.NewDevice(),
		gamepad.WithInterval(a.settings.GamepadPollInterval()),
		gamepad.WithLogger(a.log.WithComponent("gamepad")),
	)
	a.poller.Start()
	a.forwarder = a.engine.Forward(a.poller.Events())

	if a.settings.WatchConfig && a.configPath != "" {
		w, err := config.NewWatcher(a.configPath, a.engine.SetConfig,
			config.WithWatchLogger(a.log.WithComponent("watcher")))
		if err != nil {
			a.log.Warn("config watch unavailable: %v", err)
		} else {
			a.watcher = w
		}
	}

	return nil
}

// Shutdown tears everything down in dependency order: stop event
// sources first, drain the bridge, then stop the consumer. Safe to call
// more than once.
func (a *Application) Shutdown() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}

	if a.hook != nil {
		if err := a.hook.Uninstall(); err != nil {
			a.log.Warn("hook uninstall: %v", err)
		}
	}
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.poller != nil {
		a.poller.Close()
	}
	if a.forwarder != nil {
		a.forwarder.Wait()
	}
	a.engine.Close()
	if err := a.synth.Close(); err != nil {
		a.log.Warn("synthesizer close: %v", err)
	}

	a.log.Info("shutdown: %s", a.engine.Metrics().Snapshot())
}

// Engine exposes the engine for the tray/toggle surface.
func (a *Application) Engine() *engine.Engine {
	return a.engine
}

// SetEnabled flips the macro toggle.
func (a *Application) SetEnabled(enabled bool) {
	a.engine.SetEnabled(enabled)
}

// Enabled reports the macro toggle.
func (a *Application) Enabled() bool {
	return a.engine.Enabled()
}
