// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		bad  bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.bad {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", zap.Int("factors", 3))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "factorctl", entry["logger"])
	assert.EqualValues(t, 3, entry["factors"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug"}, &buf)
	require.NoError(t, err)

	log.Debug("contraction path")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "contraction path")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = New(Config{Level: "verbose"}, &bytes.Buffer{})
	require.Error(t, err)
}
