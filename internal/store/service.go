package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// ServiceFilter narrows a service listing. Zero-valued fields are ignored.
// City matches as a case-insensitive substring of the service's city.
type ServiceFilter struct {
	Category string
	City     string
}

// ServiceStore defines the interface for service catalog persistence.
type ServiceStore interface {
	// Create saves a new service to the store.
	// Returns validation errors from the domain Service if data is invalid.
	// Returns ErrInvalidEntity if the provider does not exist.
	Create(ctx context.Context, service *domain.Service) error

	// GetByID retrieves a service by its unique ID.
	// Returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// Find retrieves all services matching the filter.
	// Returns an empty slice (never nil) when nothing matches.
	Find(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error)

	// FindByProvider retrieves all services owned by the given provider.
	// Returns an empty slice (never nil) when the provider has none.
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.Service, error)

	// Update saves changes to an existing service.
	// Returns ErrServiceNotFound if the service does not exist.
	Update(ctx context.Context, service *domain.Service) error

	// UpdateAverageRating writes a recomputed average rating for the service.
	// Returns ErrServiceNotFound if the service does not exist.
	UpdateAverageRating(ctx context.Context, id uuid.UUID, rating float64) error

	// Delete removes a service from the store by its ID.
	// Returns ErrServiceNotFound if the service does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ServiceStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ServiceStore
}
