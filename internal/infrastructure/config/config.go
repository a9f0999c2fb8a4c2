package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Question bank: file path or http(s) URL of a JSON array
	QuestionsSource string

	// Performance persistence
	DatabasePath   string
	PerformanceKey string // fixed logical key of the performance blob

	// Session handoff
	RedisAddr  string // empty = in-memory handoff
	SessionTTL time.Duration
}

// Load reads the configuration from the environment, after loading a
// .env file if there is one. Nothing is required; bad values fall back
// to their defaults and are reported through warn.
func Load() *Config {
	_ = godotenv.Load()
	return load(func(msg string, args ...any) {
		slog.Warn(msg, args...)
	})
}

func load(warn func(msg string, args ...any)) *Config {
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second, warn),
		LogLevel:        getLevel("LOG_LEVEL", slog.LevelInfo, warn),
		QuestionsSource: getenvDefault("QUESTIONS_SOURCE", "questions.json"),
		DatabasePath:    getenvDefault("DATABASE_PATH", "practice.db"),
		PerformanceKey:  getenvDefault("PERFORMANCE_KEY", "anatomy_practice_performance"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		SessionTTL:      getDuration("SESSION_TTL", 2*time.Hour, warn),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDuration(k string, fallback time.Duration, warn func(string, ...any)) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		warn("config: invalid duration, using default", "key", k, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getLevel(k string, fallback slog.Level, warn func(string, ...any)) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		warn("config: invalid log level, using default", "key", k, "value", v, "default", fallback)
		return fallback
	}
	return level
}
