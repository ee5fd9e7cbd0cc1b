// Package config handles configuration loading and validation for agendanav.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	// Agenda is the path to the agenda document (JSON or YAML).
	Agenda string `yaml:"agenda"`
	// MeetingDay enables flagged-item injection at the special order boundary.
	MeetingDay bool `yaml:"meeting_day"`
	// Traversal is the default traversal mode.
	Traversal nav.Mode `yaml:"traversal"`
	// Theme names the color palette used for terminal output.
	Theme string `yaml:"theme"`
	// ExternalPrefix marks hrefs that leave the current agenda.
	ExternalPrefix string `yaml:"external_prefix"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Traversal:      nav.ModeDefault,
		Theme:          styles.DefaultTheme,
		ExternalPrefix: nav.DefaultExternalPrefix,
	}
}

// Load reads configuration from the given path. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Traversal == "" {
		c.Traversal = defaults.Traversal
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.ExternalPrefix == "" {
		c.ExternalPrefix = defaults.ExternalPrefix
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if !c.Traversal.IsValid() {
		return fmt.Errorf("traversal %q must be one of default, queue, shepherd, flagged", c.Traversal)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	return nil
}
