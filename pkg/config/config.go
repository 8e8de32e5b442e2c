// Package config loads default settings for rxlab from a YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a config file may provide.
type Config struct {
	Color   string `yaml:"color" toml:"color"`
	Engine  string `yaml:"engine" toml:"engine"`
	Timeout string `yaml:"timeout" toml:"timeout"` // Go duration, e.g. "5s"
	NoColor bool   `yaml:"no_color" toml:"no_color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:   highlight.DefaultColor.String(),
		Engine:  engine.Default,
		Timeout: engine.DefaultOptions().Timeout.String(),
	}
}

// Load reads path on top of Default. The format follows the extension:
// .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := highlight.ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := engine.New(c.Engine, engine.DefaultOptions()); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. Empty means no timeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}
