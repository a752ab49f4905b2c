// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/einsum"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factorctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, OptimizerGreedy, cfg.Contraction.Optimizer)
	assert.False(t, cfg.StateNames.Strict)
	assert.Equal(t, 0, cfg.Batch.Concurrency)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
contraction:
  optimizer: sequential
statenames:
  strict: true
batch:
  concurrency: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, OptimizerSequential, cfg.Contraction.Optimizer)
	assert.True(t, cfg.StateNames.Strict)
	assert.Equal(t, 3, cfg.Batch.Concurrency)
	assert.Len(t, cfg.AlgebraOptions(), 3)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("FACTORCTL_LOG_LEVEL", "error")
	t.Setenv("FACTORCTL_CONTRACTION_OPTIMIZER", "sequential")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, OptimizerSequential, cfg.Contraction.Optimizer)
}

func TestLoad_EmptyPathUsesEnv(t *testing.T) {
	t.Setenv("FACTORCTL_STATENAMES_STRICT", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.StateNames.Strict)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	tests := map[string]string{
		"level":       "log:\n  level: chatty\n",
		"format":      "log:\n  format: xml\n",
		"optimizer":   "contraction:\n  optimizer: optimal\n",
		"concurrency": "batch:\n  concurrency: -2\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestConfig_Optimizer(t *testing.T) {
	c := &Config{Contraction: ContractionConfig{Optimizer: "Sequential"}}
	opt, err := c.optimizer()
	require.NoError(t, err)
	assert.Equal(t, einsum.Sequential{}, opt)
}
