package action

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Action kind names as they appear in configuration.
const (
	KindTypeText = "type_text"
	KindSequence = "sequence"
	KindScript   = "script"
)

// Params is the parameter payload of a hotkey action.
type Params interface {
	// Kind returns the action kind name.
	Kind() string
}

// Speed preset delays for type_text.
const (
	SpeedFastest = 5 * time.Millisecond
	SpeedFast    = 10 * time.Millisecond
	SpeedNormal  = 20 * time.Millisecond
	SpeedSlow    = 50 * time.Millisecond

	// DefaultCharDelay applies when neither speed nor delay is set.
	DefaultCharDelay = 10 * time.Millisecond
)

// TypeText types a string character by character.
type TypeText struct {
	// Text is the string to type.
	Text string `yaml:"text"`

	// Speed is an optional preset: fastest, fast, normal, slow.
	Speed string `yaml:"speed,omitempty"`

	// Delay is an optional explicit per-key delay in milliseconds. It
	// overrides Speed when set.
	Delay *int64 `yaml:"delay,omitempty"`
}

// Kind implements Params.
func (*TypeText) Kind() string { return KindTypeText }

// CharDelay resolves the effective delay between key transitions.
func (t *TypeText) CharDelay() time.Duration {
	if t.Delay != nil {
		return time.Duration(*t.Delay) * time.Millisecond
	}
	switch t.Speed {
	case "fastest":
		return SpeedFastest
	case "fast":
		return SpeedFast
	case "normal":
		return SpeedNormal
	case "slow":
		return SpeedSlow
	}
	return DefaultCharDelay
}

// Sequence executes an ordered list of steps.
type Sequence struct {
	Steps []Step `yaml:"steps"`
}

// Kind implements Params.
func (*Sequence) Kind() string { return KindSequence }

// Script runs a Lua body through the script runner.
type Script struct {
	// Source is the Lua program text.
	Source string `yaml:"source"`
}

// Kind implements Params.
func (*Script) Kind() string { return KindScript }

// KeyAction selects which half of a key step is synthesized.
type KeyAction string

// Key step actions. Complete is the default: down then up.
const (
	ActionPress    KeyAction = "press"
	ActionRelease  KeyAction = "release"
	ActionComplete KeyAction = "complete"
)

// ParseKeyAction resolves a configured action string; empty means
// complete.
func ParseKeyAction(s string) (KeyAction, error) {
	switch strings.ToLower(s) {
	case "", string(ActionComplete):
		return ActionComplete, nil
	case string(ActionPress):
		return ActionPress, nil
	case string(ActionRelease):
		return ActionRelease, nil
	}
	return "", fmt.Errorf("unknown key action %q", s)
}

// Step type names.
const (
	StepKey  = "key"
	StepWait = "wait"
	StepText = "text"
)

// Step is one entry in a sequence.
type Step struct {
	// Type is one of key, wait, text.
	Type string

	// Key is the symbolic key name for key steps.
	Key string

	// Action applies to key steps.
	Action KeyAction

	// Text is the literal for text steps.
	Text string

	// Delay is the optional per-step delay in milliseconds for key and
	// text steps.
	Delay *int64

	// Wait is the pause in milliseconds for wait steps.
	Wait int64
}

// UnmarshalYAML decodes the step's tagged-union form: the meaning of
// "value" depends on "type".
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type   string    `yaml:"type"`
		Value  yaml.Node `yaml:"value"`
		Delay  *int64    `yaml:"delay"`
		Action string    `yaml:"action"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch strings.ToLower(raw.Type) {
	case StepKey:
		s.Type = StepKey
		if err := raw.Value.Decode(&s.Key); err != nil {
			return fmt.Errorf("key step value: %w", err)
		}
		act, err := ParseKeyAction(raw.Action)
		if err != nil {
			return err
		}
		s.Action = act
		s.Delay = raw.Delay
	case StepWait:
		s.Type = StepWait
		if err := raw.Value.Decode(&s.Wait); err != nil {
			return fmt.Errorf("wait step value: %w", err)
		}
	case StepText:
		s.Type = StepText
		if err := raw.Value.Decode(&s.Text); err != nil {
			return fmt.Errorf("text step value: %w", err)
		}
		s.Delay = raw.Delay
	default:
		return fmt.Errorf("unknown step type %q", raw.Type)
	}
	return nil
}

// DelayDuration returns the step delay, or zero when unset.
func (s *Step) DelayDuration() time.Duration {
	if s.Delay == nil {
		return 0
	}
	return time.Duration(*s.Delay) * time.Millisecond
}
