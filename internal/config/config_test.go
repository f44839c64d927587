package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/pairs-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "DEFAULT_SLOT_COUNT", "DEFERRED_RESOLUTION", "WS_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, 12, c.DefaultSlotCount)
	assert.False(t, c.DeferredResolution)
	assert.Equal(t, 5*time.Second, c.WSWriteTimeout)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEFAULT_SLOT_COUNT", "20")
	t.Setenv("DEFERRED_RESOLUTION", "true")
	t.Setenv("WS_WRITE_TIMEOUT", "250ms")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, 20, c.DefaultSlotCount)
	assert.True(t, c.DeferredResolution)
	assert.Equal(t, 250*time.Millisecond, c.WSWriteTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"DEFAULT_SLOT_COUNT", "7"},
		{"DEFAULT_SLOT_COUNT", "54"},
		{"DEFAULT_SLOT_COUNT", "many"},
		{"DEFERRED_RESOLUTION", "maybe"},
		{"WS_WRITE_TIMEOUT", "soon"},
		{"LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
