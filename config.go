package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds search limits and input conventions. Adjust the limits to trade
// speed for the chance of finding a path.
type Config struct {
	// MaxDepth is the longest reagent path the search will deepen to.
	MaxDepth int `yaml:"max_depth" json:"maxDepth"`
	// MaxIterations caps frontier pops per start.
	MaxIterations int `yaml:"max_iterations" json:"maxIterations"`
	// MaxWorkers caps concurrently running searches. 0 runs one goroutine per
	// viable start.
	MaxWorkers int `yaml:"max_workers" json:"maxWorkers"`
	// ExitusName is the reserved reagent name of the target line.
	ExitusName string `yaml:"exitus_name" json:"exitusName"`
	// NegationPrefix marks an atom that cancels its plain counterpart.
	NegationPrefix string `yaml:"negation_prefix" json:"negationPrefix"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the limits the solver ships with.
func DefaultConfig() Config {
	return Config{
		MaxDepth:       15,
		MaxIterations:  2500,
		MaxWorkers:     0,
		ExitusName:     "Exitus-1",
		NegationPrefix: "-",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects limits the search cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max_depth must be >= 1, got %d", c.MaxDepth))
	}
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max_iterations must be >= 1, got %d", c.MaxIterations))
	}
	if c.MaxWorkers < 0 {
		errs = append(errs, fmt.Errorf("max_workers must be >= 0, got %d", c.MaxWorkers))
	}
	if c.ExitusName == "" {
		errs = append(errs, errors.New("exitus_name is empty"))
	}
	if c.NegationPrefix == "" {
		errs = append(errs, errors.New("negation_prefix is empty"))
	}
	return errors.Join(errs...)
}
