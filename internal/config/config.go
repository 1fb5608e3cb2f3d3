/*
PURPOSE:
  Defines the configuration structure and loading logic for runplot.

REQUIREMENTS:
  User-specified:
  - Fixed suffix convention and rounding precision, overridable when the
    solver's output layout changes.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Chart size, duplicate-match policy and summary exports are tunable.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to defaults silently.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Validate() after every load and after flag overrides.

USAGE:
  cfg, err := config.Load("runplot.yaml")

SELF-HEALING INSTRUCTIONS:
  - If a new field is added, give it a default in DefaultConfig() and a check
    in Validate().

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/runplot/internal/discovery"
	"github.com/daryltucker/runplot/internal/output"
	"github.com/daryltucker/runplot/internal/plot"
	"github.com/daryltucker/runplot/internal/stats"
)

// DefaultFiles are searched in order when no --config is given.
var DefaultFiles = []string{"runplot.yaml", ".runplot.yaml"}

// Config represents the full configuration for runplot.
type Config struct {
	Chart      plot.Options       `yaml:"chart"`
	ImageExt   string             `yaml:"image_ext"`
	Suffixes   discovery.Suffixes `yaml:"suffixes"`
	Duplicates string             `yaml:"duplicates"`
	Precision  stats.Precision    `yaml:"precision"`
	LogLevel   string             `yaml:"log_level"`
	// SummaryCSV / SummaryJSON append each summary when non-empty.
	SummaryCSV  string `yaml:"summary_csv"`
	SummaryJSON string `yaml:"summary_json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chart:      plot.DefaultOptions(),
		ImageExt:   ".png",
		Suffixes:   discovery.DefaultSuffixes(),
		Duplicates: discovery.PolicyLast,
		Precision:  stats.DefaultPrecision(),
		LogLevel:   "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	output.Logger.Debug("Loaded config", "path", path)
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height))
	}
	if _, err := plot.RendererFor(c.ImageExt); err != nil {
		errs = append(errs, fmt.Errorf("image_ext: %w", err))
	}
	if c.Suffixes.Metrics == "" || c.Suffixes.AvgCost == "" || c.Suffixes.MinCost == "" {
		errs = append(errs, errors.New("suffixes must not be empty"))
	}
	switch c.Duplicates {
	case discovery.PolicyLast, discovery.PolicyError:
	default:
		errs = append(errs, fmt.Errorf("duplicates must be %q or %q, got %q", discovery.PolicyLast, discovery.PolicyError, c.Duplicates))
	}
	p := c.Precision
	if p.Avg < 0 || p.Gap < 0 || p.Time < 0 || p.Iterations < 0 {
		errs = append(errs, errors.New("precision must not be negative"))
	}
	if _, err := output.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
