package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr           string
	LogLevel           slog.Level
	DefaultSlotCount   int
	DeferredResolution bool
	WSWriteTimeout     time.Duration
	ShutdownTimeout    time.Duration
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		WSWriteTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	var err error
	if c.DefaultSlotCount, err = strconv.Atoi(envOr("DEFAULT_SLOT_COUNT", "12")); err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_SLOT_COUNT: %w", err)
	}
	if c.DefaultSlotCount <= 0 || c.DefaultSlotCount > 52 || c.DefaultSlotCount%2 != 0 {
		return Config{}, fmt.Errorf("DEFAULT_SLOT_COUNT must be an even number in [2,52], got %d", c.DefaultSlotCount)
	}

	if c.DeferredResolution, err = strconv.ParseBool(envOr("DEFERRED_RESOLUTION", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid DEFERRED_RESOLUTION: %w", err)
	}

	if c.WSWriteTimeout, err = durationEnv("WS_WRITE_TIMEOUT", c.WSWriteTimeout); err != nil {
		return Config{}, err
	}
	if c.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", c.ShutdownTimeout); err != nil {
		return Config{}, err
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
