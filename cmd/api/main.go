// Package main is the entrypoint for the TinyApp API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"github.com/tinyapp/tinyapp/internal/config"
	"github.com/tinyapp/tinyapp/internal/handler"
	"github.com/tinyapp/tinyapp/internal/metrics"
	"github.com/tinyapp/tinyapp/internal/server"
	"github.com/tinyapp/tinyapp/internal/service"
	"github.com/tinyapp/tinyapp/internal/session"
	"github.com/tinyapp/tinyapp/internal/store"
	"github.com/tinyapp/tinyapp/internal/store/memory"
	"github.com/tinyapp/tinyapp/internal/store/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Select the store backend: in-memory by default, PostgreSQL when
	// DATABASE_URL is set. The contract is identical either way.
	var dataStore store.Store
	if cfg.DatabaseURL != "" {
		pgStore, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database",
				slog.String("error", err.Error()),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			os.Exit(1)
		}
		dataStore = pgStore
		logger.Info("connected to database")
	} else {
		dataStore = memory.New()
		logger.Info("using in-memory store")
	}

	// Select the session backend the same way.
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisSessions, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", err.Error()),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		sessions = redisSessions
		logger.Info("connected to Redis")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info("using in-memory session store")
	}

	// Initialize services
	recorder := metrics.NewInMemory()
	userService := service.NewUserService(dataStore, recorder)
	urlService := service.NewURLService(dataStore, cfg.ShortCodeLength, recorder)

	// Initialize handlers and router
	r := handler.NewRouter(handler.RouterDeps{
		Base:     handler.New(),
		Auth:     handler.NewAuthHandler(userService, sessions, cfg.SessionTTL, logger),
		URLs:     handler.NewURLHandler(urlService, cfg.BaseURL, logger),
		Redirect: handler.NewRedirectHandler(urlService, logger),
		Health:   handler.NewHealthHandler(dataStore, sessions),
		Metrics:  handler.NewMetricsHandler(recorder),
		Sessions: sessions,
		Logger:   logger,
	})

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("sessions", func(context.Context) error { return sessions.Close() })
	srv.OnShutdown("store", func(context.Context) error { return dataStore.Close() })

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_url", cfg.BaseURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// redactURL masks credentials in a connection URL for logging.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "(unparseable)"
	}
	if parsed.User != nil {
		parsed.User = url.UserPassword("xxx", "xxx")
	}
	return parsed.String()
}
