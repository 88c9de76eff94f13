package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"weatherdash.app/internal/app"
	"weatherdash.app/internal/config"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting weather dashboard...", "port", cfg.Server.Port)
	runErr := application.Start(ctx)

	if err := application.Shutdown(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
	if runErr != nil {
		slog.Error("Application stopped with error", "error", runErr)
		os.Exit(1)
	}
}
