package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Service-specific validation errors
var (
	// ErrServiceIDEmpty is returned when a service ID is empty or nil.
	ErrServiceIDEmpty = errors.New("service ID cannot be empty")

	// ErrServiceProviderIDEmpty is returned when a service's provider ID is empty or nil.
	ErrServiceProviderIDEmpty = errors.New("service provider ID cannot be empty")

	// ErrServiceCategoryEmpty is returned when a service's category is empty.
	ErrServiceCategoryEmpty = errors.New("service category cannot be empty")

	// ErrServiceDescriptionEmpty is returned when a service's description is empty.
	ErrServiceDescriptionEmpty = errors.New("service description cannot be empty")

	// ErrInvalidAverageRating is returned when an average rating is outside [0,5].
	ErrInvalidAverageRating = errors.New("average rating must be between 0 and 5")
)

// TimeSlot is one weekly availability window of a service.
type TimeSlot struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Service represents an offering published by a provider: what is done,
// where, when, and for how much. AverageRating is derived from the reviews
// of the service's completed bookings and is never set by a caller; it is
// recomputed by the review service on every review write.
type Service struct {
	ID            uuid.UUID  `json:"id"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Pricing       float64    `json:"pricing"`
	Availability  []TimeSlot `json:"availability"`
	Location      Location   `json:"location"`
	AverageRating float64    `json:"average_rating"`
}

// NewService creates a new Service owned by the given provider, with a
// generated ID and an average rating of zero. Returns an error if
// validation fails.
func NewService(
	providerID uuid.UUID,
	category, description string,
	pricing float64,
	availability []TimeSlot,
	location Location,
) (*Service, error) {
	svc := &Service{
		ID:            uuid.New(),
		ProviderID:    providerID,
		Category:      category,
		Description:   description,
		Pricing:       pricing,
		Availability:  availability,
		Location:      location,
		AverageRating: 0,
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}

	return svc, nil
}

// Validate checks if the Service has valid data.
// Returns an error if any field fails validation.
func (s *Service) Validate() error {
	if s.ID == uuid.Nil {
		return ErrServiceIDEmpty
	}

	if s.ProviderID == uuid.Nil {
		return ErrServiceProviderIDEmpty
	}

	if s.Category == "" {
		return ErrServiceCategoryEmpty
	}

	if s.Description == "" {
		return ErrServiceDescriptionEmpty
	}

	if s.Pricing < 0 {
		return ErrInvalidPricing
	}

	if s.AverageRating < 0 || s.AverageRating > 5 {
		return ErrInvalidAverageRating
	}

	return nil
}
