package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/macrostorm/internal/action"
)

// DefaultFileName is the hotkey file looked up when no path is given.
const DefaultFileName = "config.yaml"

// Config is an immutable hotkey snapshot. It is replaced wholesale on
// reload; holders never see partial mutation.
type Config struct {
	Hotkeys []Hotkey `yaml:"hotkeys"`
}

// Hotkey binds one symbolic key name to an action.
type Hotkey struct {
	// Key is the symbolic trigger name, matched case-insensitively.
	// Gamepad bindings use the GP: namespace ("GP:A").
	Key string

	// Action is the action kind name. Unknown kinds are kept as-is and
	// no-op at execution time.
	Action string

	// Params is the decoded payload, nil for unknown kinds.
	Params action.Params
}

// UnmarshalYAML decodes a hotkey, choosing the params type by action
// kind.
func (h *Hotkey) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Key    string    `yaml:"key"`
		Action string    `yaml:"action"`
		Params yaml.Node `yaml:"params"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Key == "" {
		return fmt.Errorf("hotkey missing key")
	}

	h.Key = raw.Key
	h.Action = strings.ToLower(strings.TrimSpace(raw.Action))

	var params action.Params
	switch h.Action {
	case action.KindTypeText:
		params = &action.TypeText{}
	case action.KindSequence:
		params = &action.Sequence{}
	case action.KindScript:
		params = &action.Script{}
	default:
		// Unknown kinds survive the load and no-op at execution time,
		// so one bad entry cannot take the rest of the file down.
		return nil
	}

	if err := raw.Params.Decode(params); err != nil {
		return fmt.Errorf("hotkey %q params: %w", h.Key, err)
	}
	h.Params = params
	return nil
}

// FindHotkey returns the first hotkey whose key matches the name,
// case-insensitively, or nil. Lookup is linear in configured order.
func (c *Config) FindHotkey(name string) *Hotkey {
	for i := range c.Hotkeys {
		if strings.EqualFold(c.Hotkeys[i].Key, name) {
			return &c.Hotkeys[i]
		}
	}
	return nil
}

// Parse decodes a YAML document into a snapshot.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &LoadError{Err: err}
	}
	return &cfg, nil
}

// Load reads and parses the hotkey file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Locate resolves the hotkey file path: the explicit path when given,
// else the working directory, else the executable's directory.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, DefaultFileName)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", DefaultFileName, err)
	}
	p := filepath.Join(filepath.Dir(exe), DefaultFileName)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("%s not found in working or executable directory", DefaultFileName)
	}
	return p, nil
}
