package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/config"
	"github.com/specialistvlad/mathgrid/internal/dag"
	"github.com/specialistvlad/mathgrid/internal/node"
)

// Evaluation strategies.
const (
	StrategyRooted   = "rooted"
	StrategyFrontier = "frontier"
	StrategyBoth     = "both"
)

// Defaults shared by the CLI and the settings merge.
const (
	DefaultRoot    = "root"
	DefaultWidth   = 64
	DefaultDotPath = "/tmp/graph.dot"
)

// Setting names, matching the CLI flag that sets each one.
const (
	SettingRoot         = "root"
	SettingStrategy     = "strategy"
	SettingWidth        = "width"
	SettingPlaceholders = "placeholders"
	SettingDot          = "dot"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	ConfigPath string // hcl settings file, optional

	Root         string
	Strategy     string
	Width        int
	Placeholders string
	DotPath      string // empty disables the export
	Overrides    map[string]uint64

	LogFormat string
	LogLevel  string

	// Explicit holds the settings given on the command line. Values from the
	// settings file never replace them.
	Explicit map[string]bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.InputPath == "" {
		return errors.New("InputPath is a required configuration field and cannot be empty")
	}
	switch c.Strategy {
	case StrategyRooted, StrategyFrontier, StrategyBoth:
	default:
		return fmt.Errorf("invalid strategy %q: must be '%s', '%s' or '%s'", c.Strategy, StrategyRooted, StrategyFrontier, StrategyBoth)
	}
	if (c.Strategy == StrategyRooted || c.Strategy == StrategyBoth) && c.Root == "" {
		return fmt.Errorf("strategy %q requires a root identifier", c.Strategy)
	}
	if _, err := node.ParseWidth(c.Width); err != nil {
		return err
	}
	if _, err := dag.ParsePlaceholderPolicy(c.Placeholders); err != nil {
		return err
	}
	return nil
}

// explicit reports whether the named setting was given on the command line.
func (c *Config) explicit(name string) bool {
	return c.Explicit[name]
}

// ApplySettings merges a loaded settings file into the config. Settings given
// on the command line win; overrides from the file are added to the ones
// already present unless the same identifier is already set. The merged
// config is validated again.
func (c *Config) ApplySettings(m *config.Model) error {
	if m == nil {
		return nil
	}
	if ev := m.Evaluation; ev != nil {
		if ev.Root != nil && !c.explicit(SettingRoot) {
			c.Root = *ev.Root
		}
		if ev.Strategy != nil && !c.explicit(SettingStrategy) {
			c.Strategy = *ev.Strategy
		}
		if ev.Width != nil && !c.explicit(SettingWidth) {
			c.Width = *ev.Width
		}
		if ev.Placeholders != nil && !c.explicit(SettingPlaceholders) {
			c.Placeholders = *ev.Placeholders
		}
	}
	if ex := m.Export; ex != nil && ex.DotPath != nil && !c.explicit(SettingDot) {
		c.DotPath = *ex.DotPath
	}
	if len(m.Overrides) > 0 && c.Overrides == nil {
		c.Overrides = make(map[string]uint64, len(m.Overrides))
	}
	for id, v := range m.Overrides {
		if _, ok := c.Overrides[id]; !ok {
			c.Overrides[id] = v
		}
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
