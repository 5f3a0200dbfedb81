package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aouiniamine/sofia-ops/docs"

	"github.com/aouiniamine/sofia-ops/internal/cache"
	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/token"
	applog "github.com/aouiniamine/sofia-ops/internal/logger"
	"github.com/aouiniamine/sofia-ops/internal/metrics"
	"github.com/aouiniamine/sofia-ops/internal/server"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Sofia Token API
// @version 1.0
// @description Room access tokens for the Sofia voice assistant

// @host localhost:3005
// @BasePath /

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

	if !cfg.HasLiveKitCredentials() {
		logger.Warn("LIVEKIT_API_KEY / LIVEKIT_API_SECRET not set, token requests will be rejected")
	}

	redisCache, err := cache.NewRedis(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	srv := server.New(cfg.Server.Host, cfg.Connect.Port, logger, server.WithCORS(), server.WithValidator())

	if !cfg.IsProduction() {
		srv.Echo().GET("/swagger/*", echoSwagger.WrapHandler)
	}
	srv.Echo().GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	tokenFeature := token.New(cfg, redisCache, m, logger)
	tokenFeature.RegisterRoutes(srv.Echo())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting token server", zap.String("port", cfg.Connect.Port))
	if err := srv.Run(ctx, 10*time.Second); err != nil {
		logger.Fatal("Token server failed", zap.Error(err))
	}

	logger.Info("Token server exited gracefully")
}
