package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRespectsLevel(t *testing.T) {
	log, err := New(Config{Format: "json", Level: "warn"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Format: "pretty", Level: "chatty"})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestMaskLast4(t *testing.T) {
	assert.Equal(t, "****3210", MaskLast4("+91 98765 43210"))
	assert.Equal(t, "****12", MaskLast4("12"))
	assert.Empty(t, MaskLast4("  "))
}
