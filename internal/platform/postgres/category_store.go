package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface using a
// PostgreSQL database as the storage backend.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. If logger is nil, a default logger will be used.
func NewCategoryStore(db store.DBTX, logger *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create
// Returns store.ErrCategoryNameExists if the name is already taken.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		INSERT INTO categories (id, name, description, icon)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, category.ID, category.Name, category.Description, category.Icon)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate category name",
				slog.String("name", category.Name))
			return store.ErrCategoryNameExists
		}

		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	log.Info("category created successfully",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, icon
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Icon,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	return &category, nil
}

// FindAll implements store.CategoryStore.FindAll
// Returns an empty slice when there are no categories.
func (s *CategoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, icon FROM categories ORDER BY name`)
	if err != nil {
		log.Error("failed to query categories",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.Icon); err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return categories, nil
}

// Update implements store.CategoryStore.Update
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		UPDATE categories
		SET name = $1, description = $2, icon = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, category.Name, category.Description, category.Icon, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrCategoryNameExists
		}
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCategoryNotFound
	}

	log.Info("category updated successfully",
		slog.String("category_id", category.ID.String()))
	return nil
}

// Delete implements store.CategoryStore.Delete
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCategoryNotFound
	}

	log.Info("category deleted successfully", slog.String("category_id", id.String()))
	return nil
}

// WithTx implements store.CategoryStore.WithTx
func (s *CategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &CategoryStore{
		db:     tx,
		logger: s.logger,
	}
}
