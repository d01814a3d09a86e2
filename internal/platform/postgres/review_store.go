package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// ReviewStore implements the store.ReviewStore interface using a
// PostgreSQL database as the storage backend.
type ReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface. If logger is nil, a default logger will be used.
func NewReviewStore(db store.DBTX, logger *slog.Logger) *ReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create
// Returns store.ErrReviewExists if the booking already has a review and
// store.ErrInvalidEntity if the booking or customer does not exist.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		INSERT INTO reviews (id, booking_id, customer_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.BookingID,
		review.CustomerID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate review for booking",
				slog.String("booking_id", review.BookingID.String()))
			return store.ErrReviewExists
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced booking or customer not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()),
		slog.String("booking_id", review.BookingID.String()),
		slog.Int("rating", review.Rating))
	return nil
}

// GetByBooking implements store.ReviewStore.GetByBooking
// Returns store.ErrReviewNotFound if no review exists for the booking.
func (s *ReviewStore) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, booking_id, customer_id, rating, comment, created_at
		FROM reviews
		WHERE booking_id = $1
	`

	var review domain.Review
	err := s.db.QueryRowContext(ctx, query, bookingID).Scan(
		&review.ID,
		&review.BookingID,
		&review.CustomerID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReviewNotFound
		}
		log.Error("failed to get review by booking",
			slog.String("error", err.Error()),
			slog.String("booking_id", bookingID.String()))
		return nil, err
	}

	return &review, nil
}

// FindByService implements store.ReviewStore.FindByService
// It joins reviews to bookings to find every review of the given service.
// Returns an empty slice when the service has no reviews.
func (s *ReviewStore) FindByService(ctx context.Context, serviceID uuid.UUID) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT r.id, r.booking_id, r.customer_id, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN bookings b ON b.id = r.booking_id
		WHERE b.service_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, serviceID)
	if err != nil {
		log.Error("failed to query reviews by service",
			slog.String("error", err.Error()),
			slog.String("service_id", serviceID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	reviews := []*domain.Review{}
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.BookingID,
			&review.CustomerID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan review row",
				slog.String("error", err.Error()))
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return reviews, nil
}

// WithTx implements store.ReviewStore.WithTx
func (s *ReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &ReviewStore{
		db:     tx,
		logger: s.logger,
	}
}
