package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aouiniamine/sofia-ops/internal/config"
	applog "github.com/aouiniamine/sofia-ops/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "sofiactl",
	Short:         "Operator tooling for the Sofia voice assistant",
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// setup loads .env, the configuration and a logger for one command run.
func setup() (*config.Config, *zap.Logger, error) {
	envErr := godotenv.Load()

	cfg := config.Load()

	logger, err := applog.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if envErr != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	return cfg, logger, nil
}
