package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/health"
	"github.com/aouiniamine/sofia-ops/internal/heartbeat"
	applog "github.com/aouiniamine/sofia-ops/internal/logger"
	"github.com/aouiniamine/sofia-ops/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	logger, err := applog.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if envErr != nil {
		logger.Info("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server.Host, cfg.Server.Port, logger, server.WithEmptyErrorBodies())
	health.New(cfg).RegisterRoutes(srv.Echo())

	logger.Info("Starting Sofia Agent health server", zap.String("port", cfg.Server.Port))
	if err := srv.Listen(); err != nil {
		logger.Fatal("Failed to start health server", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, 0)
	})
	g.Go(func() error {
		return heartbeat.Run(gctx, cfg.HeartbeatInterval, logger)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Health server failed", zap.Error(err))
	}

	logger.Info("Service stopped")
}
