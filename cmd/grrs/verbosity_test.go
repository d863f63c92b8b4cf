package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		verbose, quiet int
		want           zapcore.Level
		enabled        bool
	}{
		{0, 0, zapcore.WarnLevel, true},
		{1, 0, zapcore.InfoLevel, true},
		{2, 0, zapcore.DebugLevel, true},
		{5, 0, zapcore.DebugLevel, true},
		{0, 1, zapcore.ErrorLevel, true},
		{0, 2, 0, false},
		{1, 1, zapcore.WarnLevel, true},
	}

	for _, tt := range tests {
		v := verbosity{verbose: tt.verbose, quiet: tt.quiet}
		lvl, ok := v.level()
		assert.Equal(t, tt.enabled, ok, "-v x%d -q x%d", tt.verbose, tt.quiet)
		if tt.enabled {
			assert.Equal(t, tt.want, lvl, "-v x%d -q x%d", tt.verbose, tt.quiet)
		}
	}
}

func TestVerbosityLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := verbosity{verbose: 1}.logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	verbosity{quiet: 2}.logger(&buf).Error("silenced")
	assert.Empty(t, buf.String())
}
