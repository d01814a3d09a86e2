package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/store"
)

func newTestBookingService(t *testing.T) (BookingService, *MockBookingStore, *MockServiceStore, *MockUserStore) {
	t.Helper()
	bookingStore := new(MockBookingStore)
	serviceStore := new(MockServiceStore)
	userStore := new(MockUserStore)
	return NewBookingService(bookingStore, serviceStore, userStore, nil), bookingStore, serviceStore, userStore
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	serviceID := uuid.New()
	input := CreateBookingInput{
		CustomerID:    uuid.New(),
		ServiceID:     serviceID,
		Date:          time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		PaymentMethod: domain.PayOrange,
	}

	t.Run("snapshots the service pricing as total cost", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, serviceStore, _ := newTestBookingService(t)

		serviceStore.On("GetByID", ctx, serviceID).
			Return(&domain.Service{ID: serviceID, Pricing: 150}, nil)
		bookingStore.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := svc.CreateBooking(ctx, customerPrincipal(), input)
		require.NoError(t, err)
		assert.Equal(t, 150.0, booking.TotalCost)
		assert.Equal(t, domain.BookingPending, booking.Status)
		assert.Equal(t, domain.PaymentPending, booking.PaymentStatus)
		assert.Nil(t, booking.PaymentDate)
		bookingStore.AssertExpectations(t)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		_, err := svc.CreateBooking(ctx, nil, input)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		bookingStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown service wins over bad payment method", func(t *testing.T) {
		t.Parallel()
		svc, _, serviceStore, _ := newTestBookingService(t)

		serviceStore.On("GetByID", ctx, serviceID).Return(nil, store.ErrServiceNotFound)

		bad := input
		bad.PaymentMethod = "paypal"
		_, err := svc.CreateBooking(ctx, customerPrincipal(), bad)
		assert.ErrorIs(t, err, store.ErrServiceNotFound)
	})

	t.Run("rejects unsupported payment method", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, serviceStore, _ := newTestBookingService(t)

		serviceStore.On("GetByID", ctx, serviceID).
			Return(&domain.Service{ID: serviceID, Pricing: 150}, nil)

		bad := input
		bad.PaymentMethod = "paypal"
		_, err := svc.CreateBooking(ctx, customerPrincipal(), bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
		bookingStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("applies any transition between valid statuses", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		// Even a terminal state may be left again; callers own the lifecycle.
		booking := &domain.Booking{ID: uuid.New(), Status: domain.BookingCompleted}
		bookingStore.On("GetByID", ctx, booking.ID).Return(booking, nil)
		bookingStore.On("UpdateStatus", ctx, booking.ID, domain.BookingPending).Return(nil)

		updated, err := svc.UpdateStatus(ctx, customerPrincipal(), booking.ID, domain.BookingPending)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingPending, updated.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		_, err := svc.UpdateStatus(ctx, customerPrincipal(), uuid.New(), "archived")
		assert.ErrorIs(t, err, ErrInvalidInput)
		bookingStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		svc, _, _, _ := newTestBookingService(t)

		_, err := svc.UpdateStatus(ctx, nil, uuid.New(), domain.BookingConfirmed)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owning customer deletes", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)
		principal := customerPrincipal()

		booking := &domain.Booking{ID: uuid.New(), CustomerID: principal.ID}
		bookingStore.On("GetByID", ctx, booking.ID).Return(booking, nil)
		bookingStore.On("Delete", ctx, booking.ID).Return(nil)

		require.NoError(t, svc.DeleteBooking(ctx, principal, booking.ID))
		bookingStore.AssertExpectations(t)
	})

	t.Run("any provider may delete", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		booking := &domain.Booking{ID: uuid.New(), CustomerID: uuid.New()}
		bookingStore.On("GetByID", ctx, booking.ID).Return(booking, nil)
		bookingStore.On("Delete", ctx, booking.ID).Return(nil)

		require.NoError(t, svc.DeleteBooking(ctx, providerPrincipal(), booking.ID))
	})

	t.Run("rejects unrelated customer", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		booking := &domain.Booking{ID: uuid.New(), CustomerID: uuid.New()}
		bookingStore.On("GetByID", ctx, booking.ID).Return(booking, nil)

		err := svc.DeleteBooking(ctx, customerPrincipal(), booking.ID)
		assert.ErrorIs(t, err, ErrForbidden)
		bookingStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMarkPaymentPaid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stamps payment and re-reads the booking", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		id := uuid.New()
		paidAt := time.Now().UTC()
		bookingStore.On("UpdatePayment", ctx, id, domain.PaymentPaid, mock.AnythingOfType("time.Time")).
			Return(nil)
		bookingStore.On("GetByID", ctx, id).
			Return(&domain.Booking{ID: id, PaymentStatus: domain.PaymentPaid, PaymentDate: &paidAt}, nil)

		booking, err := svc.MarkPaymentPaid(ctx, customerPrincipal(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, booking.PaymentStatus)
		require.NotNil(t, booking.PaymentDate)
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, _, _ := newTestBookingService(t)

		id := uuid.New()
		bookingStore.On("UpdatePayment", ctx, id, domain.PaymentPaid, mock.AnythingOfType("time.Time")).
			Return(store.ErrBookingNotFound)

		_, err := svc.MarkPaymentPaid(ctx, customerPrincipal(), id)
		assert.ErrorIs(t, err, store.ErrBookingNotFound)
	})
}

func TestListBookingsForProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("collects bookings across the provider's services", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, serviceStore, _ := newTestBookingService(t)

		providerID := uuid.New()
		serviceA := uuid.New()
		serviceB := uuid.New()
		serviceStore.On("FindByProvider", ctx, providerID).Return([]*domain.Service{
			{ID: serviceA, ProviderID: providerID},
			{ID: serviceB, ProviderID: providerID},
		}, nil)

		expected := []*domain.Booking{{ID: uuid.New(), ServiceID: serviceA}}
		bookingStore.On("FindByServices", ctx, []uuid.UUID{serviceA, serviceB}).Return(expected, nil)

		bookings, err := svc.ListBookingsForProvider(ctx, providerID)
		require.NoError(t, err)
		assert.Equal(t, expected, bookings)
	})

	t.Run("provider with no services gets an empty slice", func(t *testing.T) {
		t.Parallel()
		svc, bookingStore, serviceStore, _ := newTestBookingService(t)

		providerID := uuid.New()
		serviceStore.On("FindByProvider", ctx, providerID).Return([]*domain.Service{}, nil)
		bookingStore.On("FindByServices", ctx, []uuid.UUID{}).Return([]*domain.Booking{}, nil)

		bookings, err := svc.ListBookingsForProvider(ctx, providerID)
		require.NoError(t, err)
		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})
}

func TestResolveBookingReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("dangling customer resolves to nil", func(t *testing.T) {
		t.Parallel()
		svc, _, _, userStore := newTestBookingService(t)

		booking := &domain.Booking{ID: uuid.New(), CustomerID: uuid.New()}
		userStore.On("GetByID", ctx, booking.CustomerID).Return(nil, store.ErrUserNotFound)

		user, err := svc.ResolveCustomer(ctx, booking)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("dangling service resolves to nil", func(t *testing.T) {
		t.Parallel()
		svc, _, serviceStore, _ := newTestBookingService(t)

		booking := &domain.Booking{ID: uuid.New(), ServiceID: uuid.New()}
		serviceStore.On("GetByID", ctx, booking.ServiceID).Return(nil, store.ErrServiceNotFound)

		service, err := svc.ResolveService(ctx, booking)
		require.NoError(t, err)
		assert.Nil(t, service)
	})
}
