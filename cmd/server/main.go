package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/api"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/places"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps/profiles"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/database"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/logging"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	// Fails fast on a missing key, mirrored by cfg.Validate above.
	geocoder, err := geocode.NewGoogleProvider(cfg.GeocodingAPIKey, cfg.GeocodingBaseURL, cfg.HTTPTimeout)
	if err != nil {
		slog.Error("geocoding provider init failed", "error", err.Error())
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err.Error())
		os.Exit(1)
	}

	if err := database.MigrateShared(); err != nil {
		slog.Error("shared migration failed", "error", err.Error())
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	plugins := []apps.Plugin{
		profiles.New(),
		places.New(geocoder),
	}

	for _, p := range plugins {
		if models := p.Models(); len(models) > 0 {
			if err := database.MigrateModels(models); err != nil {
				slog.Error("plugin migration failed", "plugin", p.ID(), "error", err.Error())
				os.Exit(1)
			}
			slog.Info("plugin migrated", "plugin", p.ID(), "models", len(models))
		}
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err.Error())
		}
	}

	app := api.NewFiberApp(cfg, database.DB, plugins, api.Options{RequestLog: true})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err.Error())
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err.Error())
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(); err != nil {
		slog.Error("database close error", "error", err.Error())
	}

	slog.Info("server stopped")
}
