package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service/auth"
	"github.com/serviceo/serviceo-api/internal/store"
)

// MockUserStore is a testify mock for store.UserStore.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	return args.Get(0).(store.UserStore)
}

// MockServiceStore is a testify mock for store.ServiceStore.
type MockServiceStore struct {
	mock.Mock
}

var _ store.ServiceStore = (*MockServiceStore)(nil)

func (m *MockServiceStore) Create(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceStore) Find(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceStore) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.Service, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceStore) Update(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceStore) UpdateAverageRating(ctx context.Context, id uuid.UUID, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	args := m.Called(tx)
	return args.Get(0).(store.ServiceStore)
}

// MockBookingStore is a testify mock for store.BookingStore.
type MockBookingStore struct {
	mock.Mock
}

var _ store.BookingStore = (*MockBookingStore)(nil)

func (m *MockBookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) FindByServices(ctx context.Context, serviceIDs []uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingStore) UpdatePayment(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, paidAt time.Time) error {
	args := m.Called(ctx, id, status, paidAt)
	return args.Error(0)
}

func (m *MockBookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingStore) WithTx(tx *sql.Tx) store.BookingStore {
	args := m.Called(tx)
	return args.Get(0).(store.BookingStore)
}

// MockReviewStore is a testify mock for store.ReviewStore.
type MockReviewStore struct {
	mock.Mock
}

var _ store.ReviewStore = (*MockReviewStore)(nil)

func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewStore) FindByService(ctx context.Context, serviceID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	args := m.Called(tx)
	return args.Get(0).(store.ReviewStore)
}

// MockCategoryStore is a testify mock for store.CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	args := m.Called(tx)
	return args.Get(0).(store.CategoryStore)
}

// MockTokenService is a testify mock for auth.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateToken(ctx context.Context, userID uuid.UUID, role domain.UserRole) (string, error) {
	args := m.Called(ctx, userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID, role domain.UserRole) (string, error) {
	args := m.Called(ctx, userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

// MockPasswordVerifier is a testify mock for auth.PasswordVerifier.
type MockPasswordVerifier struct {
	mock.Mock
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(ctx context.Context, hashedPassword, password string) error {
	args := m.Called(ctx, hashedPassword, password)
	return args.Error(0)
}
