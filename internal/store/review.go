package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// ReviewStore defines the interface for review data persistence.
// Reviews are immutable: there are no update or delete operations.
type ReviewStore interface {
	// Create saves a new review to the store.
	// Returns validation errors from the domain Review if data is invalid.
	// Returns ErrReviewExists if a review for the booking already exists.
	Create(ctx context.Context, review *domain.Review) error

	// GetByBooking retrieves the review written for the given booking.
	// Returns ErrReviewNotFound if no review exists for it.
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error)

	// FindByService retrieves all reviews whose booking references the
	// given service, joined through the bookings table.
	// Returns an empty slice (never nil) when the service has none.
	FindByService(ctx context.Context, serviceID uuid.UUID) ([]*domain.Review, error)

	// WithTx returns a new ReviewStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
