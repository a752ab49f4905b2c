// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by factorctl. Library packages
// never construct loggers themselves; they accept a *zap.Logger through
// their WithLogger options and default to a no-op.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Accepted encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config carries the logger construction parameters.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive). Empty means info.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is json or console. Empty means console.
	Format string `mapstructure:"format" yaml:"format"`
}

// ParseLevel maps a level name to a zapcore.Level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// New returns a logger writing cfg.Format-encoded entries at or above
// cfg.Level to w.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	case FormatConsole, "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core).Named("factorctl"), nil
}
