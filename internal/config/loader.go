// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "FACTORCTL"

// newViper returns a viper instance bound to FACTORCTL_* variables, where
// "log.level" resolves to FACTORCTL_LOG_LEVEL. Every key gets a default so
// AutomaticEnv can see it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("contraction.optimizer", DefaultOptimizer)
	v.SetDefault("statenames.strict", DefaultStrict)
	v.SetDefault("batch.concurrency", DefaultConcurrency)

	return v
}

// Load reads the YAML file at path, applies FACTORCTL_* overrides and
// defaults, and validates the result. An empty path is LoadFromEnv.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromEnv()
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from FACTORCTL_* variables and defaults only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
