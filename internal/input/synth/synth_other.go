//go:build !windows && !linux

package synth

import "github.com/dshills/macrostorm/internal/input/key"

// Sender is the unsupported-platform synthesizer. Every injection fails;
// the executor logs and skips per its normal per-step recovery.
type Sender struct{}

// New returns a synthesizer that cannot inject on this platform.
func New() (*Sender, error) {
	return &Sender{}, nil
}

// Press implements Synthesizer.
func (s *Sender) Press(c key.Code) error {
	return &InjectionError{Code: c, Down: true, Err: ErrInjectionFailed}
}

// Release implements Synthesizer.
func (s *Sender) Release(c key.Code) error {
	return &InjectionError{Code: c, Down: false, Err: ErrInjectionFailed}
}

// Close implements Synthesizer.
func (s *Sender) Close() error { return nil }
