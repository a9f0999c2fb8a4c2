package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/practice-drill/backend/internal/api"
	"github.com/practice-drill/backend/internal/infrastructure/bankloader"
	"github.com/practice-drill/backend/internal/infrastructure/config"
	"github.com/practice-drill/backend/internal/service"
	"github.com/practice-drill/backend/internal/store"

	_ "github.com/practice-drill/backend/docs" // generated swagger docs
)

// @title           Practice Drill API
// @version         1.0
// @description     Multiple-choice practice sessions over a static question bank, with local performance tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath, cfg.PerformanceKey)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	handoff, closeHandoff := newHandoffStore(cfg, logger)
	defer closeHandoff()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Minute)
	bank, perf := service.LoadInitialState(loadCtx, bankloader.New(logger), cfg.QuestionsSource, db, logger)
	cancelLoad()

	practiceSvc := service.NewPracticeService(bank, perf, db, handoff, logger)
	handler := api.NewHandler(practiceSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// newHandoffStore picks Redis when REDIS_ADDR is set and reachable, and
// the in-memory store otherwise.
func newHandoffStore(cfg *config.Config, logger *slog.Logger) (store.HandoffStore, func()) {
	if cfg.RedisAddr == "" {
		return store.NewMemoryHandoff(cfg.SessionTTL), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, keeping sessions in memory", "address", cfg.RedisAddr, "error", err)
		client.Close()
		return store.NewMemoryHandoff(cfg.SessionTTL), func() {}
	}

	logger.Info("session handoff on redis", "address", cfg.RedisAddr)
	return store.NewRedisHandoff(client, cfg.SessionTTL), func() { client.Close() }
}
