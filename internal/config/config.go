package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jwebster45206/eldritch-assets/pkg/eldritch"
)

type Config struct {
	Environment  string
	LogLevel     slog.Level
	MythosLayout eldritch.MythosLayout
	ListWidth    int
}

func Load() (*Config, error) {
	layout, err := eldritch.ParseMythosLayout(getEnv("MYTHOS_LAYOUT", "separate"))
	if err != nil {
		return nil, fmt.Errorf("invalid MYTHOS_LAYOUT: %w", err)
	}

	width, err := strconv.Atoi(getEnv("LIST_WIDTH", "80"))
	if err != nil || width < 20 {
		return nil, fmt.Errorf("invalid LIST_WIDTH %q: must be an integer of at least 20", os.Getenv("LIST_WIDTH"))
	}

	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		MythosLayout: layout,
		ListWidth:    width,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
