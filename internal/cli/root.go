// SPDX-License-Identifier: MIT

// Package cli holds the factorctl command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/algebra"
	"github.com/katalvlaran/lvpgm/internal/config"
	"github.com/katalvlaran/lvpgm/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// env is what PersistentPreRunE prepares for every subcommand.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

// algebraOptions combines the configured options with the CLI logger.
func (e *env) algebraOptions() []algebra.Option {
	return append(e.cfg.AlgebraOptions(), algebra.WithLogger(e.logger))
}

// NewRootCmd builds the factorctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &RootOptions{}
	e := &env{}

	cmd := &cobra.Command{
		Use:   "factorctl",
		Short: "Discrete factor algebra over YAML factor files",
		Long: "factorctl multiplies, divides, log-sums and contracts discrete factors\n" +
			"read from a YAML file and writes the result as YAML to stdout.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts, e)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (FACTORCTL_* env vars apply either way)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json); overrides config")

	cmd.AddCommand(
		newProductCmd(e),
		newDivideCmd(e),
		newLogSumCmd(e),
		newSumProductCmd(e),
		newMarginalsCmd(e),
	)

	return cmd
}

// setup loads configuration with priority flags > env > file > defaults
// and builds the stderr logger.
func setup(cmd *cobra.Command, opts *RootOptions, e *env) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	e.cfg, e.logger = cfg, logger
	logger.Debug("configuration loaded",
		zap.String("config", opts.ConfigPath),
		zap.String("optimizer", cfg.Contraction.Optimizer),
		zap.Bool("strict_state_names", cfg.StateNames.Strict),
	)

	return nil
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
