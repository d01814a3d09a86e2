package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewService(t *testing.T) {
	t.Parallel()
	providerID := uuid.New()
	location := Location{City: "Ouagadougou", District: "Centre"}

	svc, err := NewService(providerID, "plumbing", "Pipe repair", 150, nil, location)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if svc.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if svc.AverageRating != 0 {
		t.Errorf("Expected new service to start unrated, got %v", svc.AverageRating)
	}

	if svc.ProviderID != providerID {
		t.Errorf("Expected provider ID %s, got %s", providerID, svc.ProviderID)
	}

	// Test invalid provider ID
	_, err = NewService(uuid.Nil, "plumbing", "Pipe repair", 150, nil, location)
	if err != ErrServiceProviderIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrServiceProviderIDEmpty, err)
	}

	// Test empty category
	_, err = NewService(providerID, "", "Pipe repair", 150, nil, location)
	if err != ErrServiceCategoryEmpty {
		t.Errorf("Expected error %v, got %v", ErrServiceCategoryEmpty, err)
	}

	// Test negative pricing
	_, err = NewService(providerID, "plumbing", "Pipe repair", -10, nil, location)
	if err != ErrInvalidPricing {
		t.Errorf("Expected error %v, got %v", ErrInvalidPricing, err)
	}

	// Zero pricing is allowed
	if _, err = NewService(providerID, "plumbing", "Pipe repair", 0, nil, location); err != nil {
		t.Errorf("Expected zero pricing to be valid, got %v", err)
	}
}

func TestServiceValidateAverageRating(t *testing.T) {
	t.Parallel()
	svc := Service{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		Category:    "plumbing",
		Description: "Pipe repair",
		Pricing:     150,
	}

	for _, rating := range []float64{0, 2.5, 5} {
		svc.AverageRating = rating
		if err := svc.Validate(); err != nil {
			t.Errorf("Expected rating %v to be valid, got %v", rating, err)
		}
	}

	for _, rating := range []float64{-0.1, 5.1} {
		svc.AverageRating = rating
		if err := svc.Validate(); err != ErrInvalidAverageRating {
			t.Errorf("Expected error %v for rating %v, got %v", ErrInvalidAverageRating, rating, err)
		}
	}
}
