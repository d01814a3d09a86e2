package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// CategoryStore defines the interface for category reference data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// FindAll retrieves every category.
	// Returns an empty slice (never nil) when there are none.
	FindAll(ctx context.Context) ([]*domain.Category, error)

	// Update saves changes to an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	// Returns ErrCategoryNameExists if renaming to a taken name.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
