// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles fireodm project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the fireodm.yaml project configuration file.
type Config struct {
	Version int      `yaml:"version"`
	Schema  string   `yaml:"schema"`
	Outputs []Output `yaml:"outputs"`
}

// Output is one generation target and the directory it writes to.
type Output struct {
	Target  string         `yaml:"target"`
	Path    string         `yaml:"path"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
// Every problem is reported, joined into one error.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}

	var errs []error
	if c.Schema == "" {
		errs = append(errs, errors.New("schema path is required"))
	}
	if len(c.Outputs) == 0 {
		errs = append(errs, errors.New("at least one output is required"))
	}

	seen := make(map[string]bool)
	for i, o := range c.Outputs {
		if o.Target == "" {
			errs = append(errs, fmt.Errorf("outputs[%d]: target is required", i))
		}
		if o.Path == "" {
			errs = append(errs, fmt.Errorf("outputs[%d]: path is required", i))
		}
		if v, ok := o.Options["dateTimeType"]; ok && v != "Date" && v != "Timestamp" {
			errs = append(errs, fmt.Errorf("outputs[%d]: dateTimeType must be Date or Timestamp, got %v", i, v))
		}
		key := o.Target + "\x00" + o.Path
		if seen[key] {
			errs = append(errs, fmt.Errorf("outputs[%d]: duplicate output %s -> %s", i, o.Target, o.Path))
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// OutputsFor returns the outputs of target, or every output when target is empty.
func (c *Config) OutputsFor(target string) []Output {
	if target == "" {
		return c.Outputs
	}
	var result []Output
	for _, o := range c.Outputs {
		if o.Target == target {
			result = append(result, o)
		}
	}
	return result
}
