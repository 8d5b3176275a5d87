package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/onexrace/internal/app"
	"github.com/fadedpez/onexrace/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := app.NewLogger(cfg)
	ctx := context.Background()

	// Open storage and load the engine
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start: %v", err)
		os.Exit(1)
	}

	if err := a.Start(ctx); err != nil {
		logger.Error("Failed to start: %v", err)
		a.Shutdown(ctx)
		os.Exit(1)
	}

	logger.Info("OneX Race engine is running (storage=%s, ledger=%s). Press CTRL-C to exit.", cfg.StorageType, cfg.LedgerType)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	logger.Info("Shutting down...")
	a.Shutdown(ctx)
}
