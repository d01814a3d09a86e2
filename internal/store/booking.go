package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// BookingStore defines the interface for booking data persistence.
type BookingStore interface {
	// Create saves a new booking to the store.
	// Returns validation errors from the domain Booking if data is invalid.
	// Returns ErrInvalidEntity if the customer or service does not exist.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by its unique ID.
	// Returns ErrBookingNotFound if the booking does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// FindByCustomer retrieves all bookings created by the given customer.
	// Returns an empty slice (never nil) when the customer has none.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Booking, error)

	// FindByServices retrieves all bookings referencing any of the given
	// service IDs. Returns an empty slice (never nil) when there are none
	// or when serviceIDs is empty.
	FindByServices(ctx context.Context, serviceIDs []uuid.UUID) ([]*domain.Booking, error)

	// UpdateStatus replaces the booking's lifecycle status.
	// Returns ErrBookingNotFound if the booking does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error

	// UpdatePayment replaces the booking's payment status and payment date.
	// Returns ErrBookingNotFound if the booking does not exist.
	UpdatePayment(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, paidAt time.Time) error

	// Delete removes a booking from the store by its ID.
	// Returns ErrBookingNotFound if the booking does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new BookingStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) BookingStore
}
