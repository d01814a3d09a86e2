package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service"
	"github.com/serviceo/serviceo-api/internal/store"
)

// mockCatalogService is a testify mock for service.CatalogService.
type mockCatalogService struct {
	mock.Mock
}

var _ service.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) ListServices(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *mockCatalogService) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockCatalogService) GetProvider(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockCatalogService) CreateService(ctx context.Context, principal *domain.Principal, input service.CreateServiceInput) (*domain.Service, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockCatalogService) UpdateService(ctx context.Context, principal *domain.Principal, id uuid.UUID, patch service.ServicePatch) (*domain.Service, error) {
	args := m.Called(ctx, principal, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockCatalogService) DeleteService(ctx context.Context, principal *domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

// mockBookingService is a testify mock for service.BookingService.
type mockBookingService struct {
	mock.Mock
}

var _ service.BookingService = (*mockBookingService)(nil)

func (m *mockBookingService) CreateBooking(ctx context.Context, principal *domain.Principal, input service.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, principal *domain.Principal, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListBookingsForCustomer(ctx context.Context, principal *domain.Principal, customerID uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, principal, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingService) ListBookingsForProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, principal *domain.Principal, id uuid.UUID, newStatus domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, principal, id, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, principal *domain.Principal, id uuid.UUID) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *mockBookingService) MarkPaymentPaid(ctx context.Context, principal *domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, principal, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingService) ResolveCustomer(ctx context.Context, booking *domain.Booking) (*domain.User, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockBookingService) ResolveService(ctx context.Context, booking *domain.Booking) (*domain.Service, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

// mockReviewService is a testify mock for service.ReviewService.
type mockReviewService struct {
	mock.Mock
}

var _ service.ReviewService = (*mockReviewService)(nil)

func (m *mockReviewService) ListReviewsForService(ctx context.Context, serviceID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *mockReviewService) AddReview(ctx context.Context, principal *domain.Principal, input service.AddReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewService) ResolveCustomer(ctx context.Context, review *domain.Review) (*domain.User, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// newTestBooking builds a booking with every field populated the way the
// handlers serialize them.
func newTestBooking() *domain.Booking {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Booking{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		ServiceID:     uuid.New(),
		Date:          now.Add(48 * time.Hour),
		Status:        domain.BookingPending,
		TotalCost:     150,
		PaymentMethod: domain.PayCash,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
