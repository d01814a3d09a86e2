package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// BookingStore implements the store.BookingStore interface using a
// PostgreSQL database as the storage backend.
type BookingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBookingStore creates a new PostgreSQL implementation of the
// BookingStore interface. If logger is nil, a default logger will be used.
func NewBookingStore(db store.DBTX, logger *slog.Logger) *BookingStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &BookingStore{
		db:     db,
		logger: logger.With(slog.String("component", "booking_store")),
	}
}

// Ensure BookingStore implements store.BookingStore interface
var _ store.BookingStore = (*BookingStore)(nil)

const selectBookingColumns = `
	SELECT id, customer_id, service_id, date, status, total_cost, payment_method, payment_status, payment_date, created_at, updated_at
	FROM bookings`

// Create implements store.BookingStore.Create
// Returns store.ErrInvalidEntity if the customer or service does not exist.
func (s *BookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := booking.Validate(); err != nil {
		log.Warn("booking validation failed during create",
			slog.String("error", err.Error()),
			slog.String("booking_id", booking.ID.String()))
		return err
	}

	query := `
		INSERT INTO bookings (id, customer_id, service_id, date, status, total_cost, payment_method, payment_status, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.CustomerID,
		booking.ServiceID,
		booking.Date,
		booking.Status,
		booking.TotalCost,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.PaymentDate,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during booking creation",
				slog.String("booking_id", booking.ID.String()),
				slog.String("customer_id", booking.CustomerID.String()),
				slog.String("service_id", booking.ServiceID.String()))
			return fmt.Errorf("%w: referenced customer or service not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create booking",
			slog.String("error", err.Error()),
			slog.String("booking_id", booking.ID.String()))
		return err
	}

	log.Info("booking created successfully",
		slog.String("booking_id", booking.ID.String()),
		slog.String("customer_id", booking.CustomerID.String()),
		slog.String("service_id", booking.ServiceID.String()))
	return nil
}

// GetByID implements store.BookingStore.GetByID
// Returns store.ErrBookingNotFound if the booking does not exist.
func (s *BookingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, selectBookingColumns+` WHERE id = $1`, id)
	booking, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("booking not found", slog.String("booking_id", id.String()))
			return nil, store.ErrBookingNotFound
		}
		log.Error("failed to get booking by ID",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()))
		return nil, err
	}

	return booking, nil
}

// FindByCustomer implements store.BookingStore.FindByCustomer
// Returns an empty slice when the customer has no bookings.
func (s *BookingStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectBookingColumns + ` WHERE customer_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		log.Error("failed to query bookings by customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customerID.String()))
		return nil, err
	}

	return collectBookings(rows, log)
}

// FindByServices implements store.BookingStore.FindByServices
// Returns an empty slice when serviceIDs is empty or matches nothing.
func (s *BookingStore) FindByServices(ctx context.Context, serviceIDs []uuid.UUID) ([]*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(serviceIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	query := selectBookingColumns + ` WHERE service_id = ANY($1) ORDER BY date DESC`

	// pgx understands a uuid slice for ANY directly.
	rows, err := s.db.QueryContext(ctx, query, serviceIDs)
	if err != nil {
		log.Error("failed to query bookings by services",
			slog.String("error", err.Error()),
			slog.Int("service_count", len(serviceIDs)))
		return nil, err
	}

	return collectBookings(rows, log)
}

// UpdateStatus implements store.BookingStore.UpdateStatus
// Returns store.ErrBookingNotFound if the booking does not exist.
func (s *BookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update booking status",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()),
			slog.String("status", string(status)))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		log.Debug("booking not found for status update",
			slog.String("booking_id", id.String()))
		return store.ErrBookingNotFound
	}

	log.Info("booking status updated",
		slog.String("booking_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// UpdatePayment implements store.BookingStore.UpdatePayment
// Returns store.ErrBookingNotFound if the booking does not exist.
func (s *BookingStore) UpdatePayment(
	ctx context.Context,
	id uuid.UUID,
	status domain.PaymentStatus,
	paidAt time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE bookings
		SET payment_status = $1, payment_date = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, status, paidAt, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update booking payment",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()),
			slog.String("payment_status", string(status)))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrBookingNotFound
	}

	log.Info("booking payment updated",
		slog.String("booking_id", id.String()),
		slog.String("payment_status", string(status)))
	return nil
}

// Delete implements store.BookingStore.Delete
// Returns store.ErrBookingNotFound if the booking does not exist.
func (s *BookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete booking",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrBookingNotFound
	}

	log.Info("booking deleted successfully", slog.String("booking_id", id.String()))
	return nil
}

// WithTx implements store.BookingStore.WithTx
func (s *BookingStore) WithTx(tx *sql.Tx) store.BookingStore {
	return &BookingStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanBooking reads one booking row through the given scan function.
func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var booking domain.Booking
	var status, paymentMethod, paymentStatus string
	var paymentDate sql.NullTime

	err := scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ServiceID,
		&booking.Date,
		&status,
		&booking.TotalCost,
		&paymentMethod,
		&paymentStatus,
		&paymentDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	booking.PaymentMethod = domain.PaymentMethod(paymentMethod)
	booking.PaymentStatus = domain.PaymentStatus(paymentStatus)
	if paymentDate.Valid {
		t := paymentDate.Time
		booking.PaymentDate = &t
	}

	return &booking, nil
}

// collectBookings drains rows into a slice, returning an empty slice
// rather than nil when there are no rows.
func collectBookings(rows *sql.Rows, log *slog.Logger) ([]*domain.Booking, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	bookings := []*domain.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			log.Error("failed to scan booking row",
				slog.String("error", err.Error()))
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return bookings, nil
}
