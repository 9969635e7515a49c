package app

import (
	"github.com/dshills/macrostorm/internal/input/key"
	"github.com/dshills/macrostorm/internal/input/synth"
)

// inertSynth stands in when no platform synthesizer could be opened.
// Every injection fails with the normal per-step error, so macros
// resolve and log but type nothing.
type inertSynth struct{}

func (inertSynth) Press(c key.Code) error {
	return &synth.InjectionError{Code: c, Down: true, Err: synth.ErrInjectionFailed}
}

func (inertSynth) Release(c key.Code) error {
	return &synth.InjectionError{Code: c, Down: false, Err: synth.ErrInjectionFailed}
}

func (inertSynth) Close() error { return nil }
