package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	RedisAddr   string
	Environment string
	LogLevel    slog.Level
	Seed        int64
}

func Load() *Config {
	return &Config{
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Seed:        parseSeed(getEnv("SEED", "0")),
	}
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

func parseSeed(raw string) int64 {
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
