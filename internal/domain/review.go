package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Review-specific validation errors
var (
	// ErrReviewIDEmpty is returned when a review ID is empty or nil.
	ErrReviewIDEmpty = errors.New("review ID cannot be empty")

	// ErrReviewBookingIDEmpty is returned when a review's booking ID is empty or nil.
	ErrReviewBookingIDEmpty = errors.New("review booking ID cannot be empty")

	// ErrReviewCustomerIDEmpty is returned when a review's customer ID is empty or nil.
	ErrReviewCustomerIDEmpty = errors.New("review customer ID cannot be empty")

	// ErrReviewCommentEmpty is returned when a review's comment is empty.
	ErrReviewCommentEmpty = errors.New("review comment cannot be empty")
)

// Review is a customer's rating of a completed booking. At most one review
// exists per booking, and reviews are immutable once written.
type Review struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReview creates a new Review with a generated ID and creation
// timestamp. Returns an error if validation fails.
func NewReview(bookingID, customerID uuid.UUID, rating int, comment string) (*Review, error) {
	review := &Review{
		ID:         uuid.New(),
		BookingID:  bookingID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
// Returns an error if any field fails validation.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReviewIDEmpty
	}

	if r.BookingID == uuid.Nil {
		return ErrReviewBookingIDEmpty
	}

	if r.CustomerID == uuid.Nil {
		return ErrReviewCustomerIDEmpty
	}

	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}

	if r.Comment == "" {
		return ErrReviewCommentEmpty
	}

	return nil
}
