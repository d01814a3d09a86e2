package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/serviceo/serviceo-api/internal/config"
	"github.com/serviceo/serviceo-api/internal/platform/postgres"
	"github.com/serviceo/serviceo-api/internal/service"
	"github.com/serviceo/serviceo-api/internal/service/auth"
	"github.com/serviceo/serviceo-api/internal/store"
)

// application holds the wired dependency graph: configuration, the
// database handle, the stores, and the services the handlers consume.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	serviceStore  store.ServiceStore
	bookingStore  store.BookingStore
	reviewStore   store.ReviewStore
	categoryStore store.CategoryStore

	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier

	userService     service.UserService
	catalogService  service.CatalogService
	bookingService  service.BookingService
	reviewService   service.ReviewService
	categoryService service.CategoryService
}

// newApplication opens the database, applies pending migrations, and wires
// stores and services bottom-up.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:     postgres.NewUserStore(db, cfg.Auth.BcryptCost, logger),
		serviceStore:  postgres.NewServiceStore(db, logger),
		bookingStore:  postgres.NewBookingStore(db, logger),
		reviewStore:   postgres.NewReviewStore(db, logger),
		categoryStore: postgres.NewCategoryStore(db, logger),

		tokenService:     tokenService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}

	app.userService = service.NewUserService(app.userStore, app.tokenService, app.passwordVerifier, logger)
	app.catalogService = service.NewCatalogService(app.serviceStore, app.userStore, logger)
	app.bookingService = service.NewBookingService(app.bookingStore, app.serviceStore, app.userStore, logger)
	app.reviewService = service.NewReviewService(
		app.db,
		app.reviewStore,
		app.bookingStore,
		app.serviceStore,
		app.userStore,
		logger,
	)
	app.categoryService = service.NewCategoryService(app.categoryStore, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
