package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	RedisURL    string
	DataDir     string

	// MaxActiveMissions caps how many missions the player can have
	// running at once. Giver NPCs refuse interaction past this.
	MaxActiveMissions int
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:          getEnv("REDIS_URL", ""),
		DataDir:           getEnv("DATA_DIR", "./data"),
		MaxActiveMissions: getEnvInt("MAX_ACTIVE_MISSIONS", 12),
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
