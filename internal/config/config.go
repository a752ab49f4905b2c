// SPDX-License-Identifier: MIT

// Package config loads factorctl settings from an optional YAML file and
// FACTORCTL_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpgm/algebra"
	"github.com/katalvlaran/lvpgm/einsum"
	"github.com/katalvlaran/lvpgm/internal/logging"
)

// Optimizer names accepted by contraction.optimizer.
const (
	OptimizerGreedy     = "greedy"
	OptimizerSequential = "sequential"
)

// Defaults.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = logging.FormatConsole
	DefaultOptimizer   = OptimizerGreedy
	DefaultStrict      = algebra.DefaultStrictStateNames
	DefaultConcurrency = algebra.DefaultConcurrency
)

// Config is the complete factorctl configuration.
type Config struct {
	Log         logging.Config    `mapstructure:"log"`
	Contraction ContractionConfig `mapstructure:"contraction"`
	StateNames  StateNamesConfig  `mapstructure:"statenames"`
	Batch       BatchConfig       `mapstructure:"batch"`
}

// ContractionConfig selects the einsum path strategy.
type ContractionConfig struct {
	Optimizer string `mapstructure:"optimizer"`
}

// StateNamesConfig controls the SumProduct state-name merge.
type StateNamesConfig struct {
	Strict bool `mapstructure:"strict"`
}

// BatchConfig bounds SumProductAll. Zero means one worker per CPU.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(c *Config) {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Contraction.Optimizer == "" {
		c.Contraction.Optimizer = DefaultOptimizer
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q is invalid: %w", c.Log.Level, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	if _, err := c.optimizer(); err != nil {
		return err
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("config: batch.concurrency must be >= 0, got %d", c.Batch.Concurrency)
	}

	return nil
}

func (c *Config) optimizer() (einsum.Optimizer, error) {
	switch strings.ToLower(c.Contraction.Optimizer) {
	case OptimizerGreedy:
		return einsum.Greedy{}, nil
	case OptimizerSequential:
		return einsum.Sequential{}, nil
	default:
		return nil, fmt.Errorf("config: contraction.optimizer %q is invalid; expected greedy|sequential", c.Contraction.Optimizer)
	}
}

// AlgebraOptions translates the configuration into algebra options.
// c must have passed Validate.
func (c *Config) AlgebraOptions() []algebra.Option {
	opt, err := c.optimizer()
	if err != nil {
		opt = einsum.DefaultOptimizer
	}
	opts := []algebra.Option{
		algebra.WithOptimizer(opt),
		algebra.WithStrictStateNames(c.StateNames.Strict),
	}
	if c.Batch.Concurrency > 0 {
		opts = append(opts, algebra.WithConcurrency(c.Batch.Concurrency))
	}

	return opts
}
