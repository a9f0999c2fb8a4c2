package config

import (
	"log/slog"
	"testing"
	"time"
)

func noWarn(t *testing.T) func(string, ...any) {
	return func(msg string, args ...any) {
		t.Errorf("unexpected warning: %s %v", msg, args)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "QUESTIONS_SOURCE",
		"DATABASE_PATH", "PERFORMANCE_KEY", "REDIS_ADDR", "SESSION_TTL",
	} {
		t.Setenv(k, "")
	}

	cfg := load(noWarn(t))

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.PerformanceKey != "anatomy_practice_performance" {
		t.Errorf("unexpected performance key %q", cfg.PerformanceKey)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected no redis address, got %q", cfg.RedisAddr)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h session ttl, got %v", cfg.SessionTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUESTIONS_SOURCE", "https://example.com/questions.json")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "30m")

	cfg := load(noWarn(t))

	if cfg.ServerAddress != "127.0.0.1:9000" {
		t.Errorf("unexpected address %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.QuestionsSource != "https://example.com/questions.json" {
		t.Errorf("unexpected source %q", cfg.QuestionsSource)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected redis address %q", cfg.RedisAddr)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.SessionTTL)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("LOG_LEVEL", "loud")

	warnings := 0
	cfg := load(func(string, ...any) { warnings++ })

	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected default level, got %v", cfg.LogLevel)
	}
	if warnings != 2 {
		t.Errorf("expected 2 warnings, got %d", warnings)
	}
}
