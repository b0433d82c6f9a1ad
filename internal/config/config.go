// Package config loads the optional YAML file of check thresholds.
//
// Every threshold defaults to the value the dataset is expected to satisfy;
// a config file only needs to name the thresholds it overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/qpusanity/internal/checks"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Checks ChecksConfig `yaml:"checks"`
}

// ChecksConfig holds the tunable thresholds of the rule set.
// Zero values mean "use the default".
type ChecksConfig struct {
	// Date span window, in days between earliest and latest record.
	MinSpanDays int `yaml:"min_span_days"`
	MaxSpanDays int `yaml:"max_span_days"`

	// Per-day total leased blocks window.
	MinBlocksPerDay int64 `yaml:"min_blocks_per_day"`
	MaxBlocksPerDay int64 `yaml:"max_blocks_per_day"`

	// Per-day total workloads window.
	MinWorkloadsPerDay int64 `yaml:"min_workloads_per_day"`
	MaxWorkloadsPerDay int64 `yaml:"max_workloads_per_day"`

	// Tolerance is the allowed fractional deviation of each category's
	// cumulative total from the three-way average.
	Tolerance float64 `yaml:"tolerance"`

	// Daily workload partition windows.
	NewShareMin   float64 `yaml:"new_share_min"`
	NewShareMax   float64 `yaml:"new_share_max"`
	OlderShareMin float64 `yaml:"older_share_min"`
	OlderShareMax float64 `yaml:"older_share_max"`
}

// Default returns a Config with every threshold at its standard value.
func Default() *Config {
	return &Config{
		Checks: ChecksConfig{
			MinSpanDays:        checks.DefaultMinSpanDays,
			MaxSpanDays:        checks.DefaultMaxSpanDays,
			MinBlocksPerDay:    checks.DefaultMinBlocksPerDay,
			MaxBlocksPerDay:    checks.DefaultMaxBlocksPerDay,
			MinWorkloadsPerDay: checks.DefaultMinWorkloadsPerDay,
			MaxWorkloadsPerDay: checks.DefaultMaxWorkloadsPerDay,
			Tolerance:          checks.DefaultTolerance,
			NewShareMin:        checks.DefaultNewShareMin,
			NewShareMax:        checks.DefaultNewShareMax,
			OlderShareMin:      checks.DefaultOlderShareMin,
			OlderShareMax:      checks.DefaultOlderShareMax,
		},
	}
}

// Load reads a YAML config file, overlays it on the defaults and validates
// the result. Unknown YAML keys are rejected (catches typos).
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return c, nil
}

// Validate checks that every window is ordered and every ratio is a
// plausible fraction.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	cc := c.Checks
	if cc.MinSpanDays <= 0 || cc.MaxSpanDays < cc.MinSpanDays {
		return fmt.Errorf("span window [%d, %d] is not ordered", cc.MinSpanDays, cc.MaxSpanDays)
	}
	if cc.MinBlocksPerDay < 0 || cc.MaxBlocksPerDay < cc.MinBlocksPerDay {
		return fmt.Errorf("blocks window [%d, %d] is not ordered", cc.MinBlocksPerDay, cc.MaxBlocksPerDay)
	}
	if cc.MinWorkloadsPerDay < 0 || cc.MaxWorkloadsPerDay < cc.MinWorkloadsPerDay {
		return fmt.Errorf("workloads window [%d, %d] is not ordered", cc.MinWorkloadsPerDay, cc.MaxWorkloadsPerDay)
	}
	if cc.Tolerance <= 0 || cc.Tolerance >= 1 {
		return fmt.Errorf("tolerance %v must be in (0, 1)", cc.Tolerance)
	}
	if err := validateShareWindow("new", cc.NewShareMin, cc.NewShareMax); err != nil {
		return err
	}
	if err := validateShareWindow("older", cc.OlderShareMin, cc.OlderShareMax); err != nil {
		return err
	}
	return nil
}

func validateShareWindow(name string, min, max float64) error {
	if min < 0 || max > 1 || max < min {
		return fmt.Errorf("%s share window [%v, %v] must be ordered within [0, 1]", name, min, max)
	}
	return nil
}
