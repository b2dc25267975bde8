package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that all numeric settings are usable.
func (c *Config) Validate() error {
	if c.Segmenter.Bins <= 0 {
		return fmt.Errorf("segmenter.bins must be positive, got %d", c.Segmenter.Bins)
	}
	if c.Segmenter.StabilityTol <= 0 {
		return fmt.Errorf("segmenter.stability_tol must be positive, got %g", c.Segmenter.StabilityTol)
	}
	if c.Segmenter.MinSegmentFrac < 0 || c.Segmenter.MinSegmentFrac > 1 {
		return fmt.Errorf("segmenter.min_segment_frac must be in [0,1], got %g", c.Segmenter.MinSegmentFrac)
	}
	if c.Remap.Scale <= 0 {
		return fmt.Errorf("remap.scale must be positive, got %g", c.Remap.Scale)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// Save writes the configuration to a YAML file.
func Save(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
