package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Register the pgx stdlib driver under the "pgx" name.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/serviceo/serviceo-api/internal/config"
	"github.com/serviceo/serviceo-api/internal/platform/postgres"
)

// openDatabase opens and verifies a connection pool to the configured
// Postgres instance.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is empty: check your configuration")
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations applies pending schema migrations at startup.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	logger.Info("Applying database migrations")
	if err := postgres.RunMigrations(db); err != nil {
		return err
	}
	logger.Info("Database migrations up to date")
	return nil
}
