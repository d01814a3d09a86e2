// Package main implements the entry point for the Serviceo API server,
// the marketplace backend for booking local service providers, paying
// for completed work, and rating it.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/serviceo/serviceo-api/internal/config"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components. Returns the assembled application and any
// initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble application: %w", err)
	}

	return app, nil
}
