package service

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

// AddReviewInput carries the fields a customer supplies when reviewing a
// completed booking. CustomerID is the claimed reviewer; it is checked
// against the booking's owner, not against the calling principal (see
// AddReview).
type AddReviewInput struct {
	BookingID  uuid.UUID
	CustomerID uuid.UUID
	Rating     int
	Comment    string
}

// ReviewService owns review creation and the derived average rating of
// services. Reviews are immutable once written.
type ReviewService interface {
	// ListReviewsForService returns every review attached (via its
	// booking) to the given service. An empty result is an empty slice.
	ListReviewsForService(ctx context.Context, serviceID uuid.UUID) ([]*domain.Review, error)

	// AddReview creates a review for a completed booking and recomputes
	// the booked service's average rating over its full review set. The
	// write and the recompute happen in one transaction.
	//
	// Gates, in order: authentication; rating in [1,5] (ErrInvalidInput);
	// booking existence (store.ErrBookingNotFound); booking completed
	// (ErrInvalidInput); input.CustomerID matching the booking's owner
	// (ErrForbidden) - note the check is against the claimed customer id,
	// not the principal's; no prior review for the booking
	// (ErrInvalidInput).
	AddReview(ctx context.Context, principal *domain.Principal, input AddReviewInput) (*domain.Review, error)

	// ResolveCustomer looks up the review's author. A dangling reference
	// yields (nil, nil).
	ResolveCustomer(ctx context.Context, review *domain.Review) (*domain.User, error)
}

// Verify interface compliance at compile time
var _ ReviewService = (*reviewService)(nil)

type reviewService struct {
	db           *sql.DB
	reviewStore  store.ReviewStore
	bookingStore store.BookingStore
	serviceStore store.ServiceStore
	userStore    store.UserStore
	logger       *slog.Logger

	// runTx wraps store.RunInTransaction over db. Tests replace it to run
	// the function without a database.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewReviewService creates a new ReviewService over the given stores. The
// database handle is used to run the review write and the rating recompute
// in a single transaction.
func NewReviewService(
	db *sql.DB,
	reviewStore store.ReviewStore,
	bookingStore store.BookingStore,
	serviceStore store.ServiceStore,
	userStore store.UserStore,
	logger *slog.Logger,
) ReviewService {
	if db == nil {
		panic("db cannot be nil")
	}
	if reviewStore == nil {
		panic("reviewStore cannot be nil")
	}
	if bookingStore == nil {
		panic("bookingStore cannot be nil")
	}
	if serviceStore == nil {
		panic("serviceStore cannot be nil")
	}
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &reviewService{
		db:           db,
		reviewStore:  reviewStore,
		bookingStore: bookingStore,
		serviceStore: serviceStore,
		userStore:    userStore,
		logger:       logger.With(slog.String("component", "review_service")),
	}
	s.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, s.db, fn)
	}
	return s
}

// ListReviewsForService implements ReviewService.ListReviewsForService.
func (s *reviewService) ListReviewsForService(
	ctx context.Context,
	serviceID uuid.UUID,
) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reviews, err := s.reviewStore.FindByService(ctx, serviceID)
	if err != nil {
		log.Error("failed to list reviews for service",
			slog.String("error", err.Error()),
			slog.String("service_id", serviceID.String()))
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// AddReview implements ReviewService.AddReview.
func (s *reviewService) AddReview(
	ctx context.Context,
	principal *domain.Principal,
	input AddReviewInput,
) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, invalidInput("rating must be between 1 and 5")
	}

	booking, err := s.bookingStore.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingCompleted {
		log.Warn("review attempted on non-completed booking",
			slog.String("booking_id", input.BookingID.String()),
			slog.String("status", string(booking.Status)))
		return nil, invalidInput("can only review completed bookings")
	}

	// Ownership is checked against the customer id claimed in the input;
	// the principal is not cross-checked against that id.
	if booking.CustomerID != input.CustomerID {
		log.Warn("review denied, customer does not own booking",
			slog.String("booking_id", input.BookingID.String()),
			slog.String("claimed_customer_id", input.CustomerID.String()),
			slog.String("owner_id", booking.CustomerID.String()))
		return nil, fmt.Errorf("%w: not authorized to review this booking", ErrForbidden)
	}

	// Uniqueness is enforced here at the application layer; the unique
	// index on booking_id is only the storage backstop.
	_, err = s.reviewStore.GetByBooking(ctx, input.BookingID)
	switch {
	case err == nil:
		return nil, invalidInput("review already exists for this booking")
	case !errors.Is(err, store.ErrReviewNotFound):
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review, err := domain.NewReview(input.BookingID, input.CustomerID, input.Rating, input.Comment)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	// The review write and the rating recompute commit together; a failed
	// recompute rolls the review back rather than leaving a stale average.
	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txReviews := s.reviewStore.WithTx(tx)
		txServices := s.serviceStore.WithTx(tx)

		if err := txReviews.Create(ctx, review); err != nil {
			if errors.Is(err, store.ErrReviewExists) {
				return invalidInput("review already exists for this booking")
			}
			log.Error("failed to create review",
				slog.String("error", err.Error()),
				slog.String("booking_id", input.BookingID.String()))
			return fmt.Errorf("failed to create review: %w", err)
		}

		return s.recomputeAverageRating(ctx, txReviews, txServices, booking.ServiceID)
	})
	if err != nil {
		return nil, err
	}

	log.Info("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("booking_id", review.BookingID.String()),
		slog.String("service_id", booking.ServiceID.String()),
		slog.Int("rating", review.Rating))
	return review, nil
}

// recomputeAverageRating rewrites the service's average rating as the
// arithmetic mean over its full review set. A full rescan per write is
// deliberate: it cannot accumulate incremental drift, and review volume
// is low.
func (s *reviewService) recomputeAverageRating(
	ctx context.Context,
	reviewStore store.ReviewStore,
	serviceStore store.ServiceStore,
	serviceID uuid.UUID,
) error {
	reviews, err := reviewStore.FindByService(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	if err := serviceStore.UpdateAverageRating(ctx, serviceID, average); err != nil {
		// A vanished service is tolerated: the review outlives it and the
		// rating has nowhere to go.
		if errors.Is(err, store.ErrServiceNotFound) {
			return nil
		}
		return fmt.Errorf("failed to write average rating: %w", err)
	}

	return nil
}

// ResolveCustomer implements ReviewService.ResolveCustomer.
func (s *reviewService) ResolveCustomer(
	ctx context.Context,
	review *domain.Review,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, review.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
