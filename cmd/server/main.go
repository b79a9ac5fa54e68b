// Package main is the entry point for the greeting HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/greeting"
	"github.com/sebasr/greeting-service/internal/logging"
	"github.com/sebasr/greeting-service/internal/server"
)

func main() {
	startedAt := time.Now()

	// Bootstrap logger until the configured one is available
	bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to create logger")
	}

	gin.SetMode(cfg.Server.Mode)

	// One counter for the lifetime of the process; it starts at zero on every restart
	service := greeting.NewService(&greeting.Counter{})

	srv := server.NewHTTPServer(&server.Dependencies{
		Config:    cfg,
		Greeter:   service,
		Logger:    logger,
		StartedAt: startedAt,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Int64("rate_limit", cfg.RateLimit.Limit).
		Dur("rate_limit_period", cfg.RateLimit.Period).
		Msg("starting server")

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		stop()
		os.Exit(1)
	}

	logger.Info().Msg("server stopped")
}
