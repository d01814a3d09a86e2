package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/platform/logger"
	"github.com/serviceo/serviceo-api/internal/store"
)

// CreateBookingInput carries the fields a customer supplies when booking a
// service. TotalCost is absent: it is always snapshotted from the
// service's pricing at creation time.
type CreateBookingInput struct {
	CustomerID    uuid.UUID
	ServiceID     uuid.UUID
	Date          time.Time
	PaymentMethod domain.PaymentMethod
}

// BookingService owns the booking lifecycle: creation with cost snapshot,
// status transitions, payment tracking, and cross-entity authorization.
type BookingService interface {
	// CreateBooking books a service for a customer. The booking starts
	// pending with an unpaid payment, and its total cost is a snapshot of
	// the service's pricing at call time. Fails with ErrUnauthenticated
	// without a principal, store.ErrServiceNotFound for an unknown
	// service, and ErrInvalidInput for an unsupported payment method.
	CreateBooking(ctx context.Context, principal *domain.Principal, input CreateBookingInput) (*domain.Booking, error)

	// GetBooking returns the booking with the given ID or
	// store.ErrBookingNotFound. Requires authentication.
	GetBooking(ctx context.Context, principal *domain.Principal, id uuid.UUID) (*domain.Booking, error)

	// ListBookingsForCustomer returns the given customer's bookings.
	// Requires authentication, but any authenticated principal may query
	// any customer id; the id is not cross-checked against the principal.
	ListBookingsForCustomer(ctx context.Context, principal *domain.Principal, customerID uuid.UUID) ([]*domain.Booking, error)

	// ListBookingsForProvider returns every booking of every service the
	// provider owns. This is a public read: no principal is required.
	ListBookingsForProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.Booking, error)

	// UpdateStatus replaces the booking's status with newStatus. Only enum
	// membership is validated; any status may replace any other, including
	// transitions out of the terminal states. Callers drive the lifecycle.
	UpdateStatus(ctx context.Context, principal *domain.Principal, id uuid.UUID, newStatus domain.BookingStatus) (*domain.Booking, error)

	// DeleteBooking removes a booking. Allowed for the owning customer and
	// for any provider; everyone else gets ErrForbidden.
	DeleteBooking(ctx context.Context, principal *domain.Principal, id uuid.UUID) error

	// MarkPaymentPaid sets the booking's payment status to paid and stamps
	// the payment date. Fails with store.ErrBookingNotFound if absent.
	MarkPaymentPaid(ctx context.Context, principal *domain.Principal, bookingID uuid.UUID) (*domain.Booking, error)

	// ResolveCustomer looks up the booking's customer. A dangling
	// reference yields (nil, nil): display concern, not an error.
	ResolveCustomer(ctx context.Context, booking *domain.Booking) (*domain.User, error)

	// ResolveService looks up the booking's service. A dangling reference
	// yields (nil, nil).
	ResolveService(ctx context.Context, booking *domain.Booking) (*domain.Service, error)
}

// Verify interface compliance at compile time
var _ BookingService = (*bookingService)(nil)

type bookingService struct {
	bookingStore store.BookingStore
	serviceStore store.ServiceStore
	userStore    store.UserStore
	now          func() time.Time
	logger       *slog.Logger
}

// NewBookingService creates a new BookingService over the given stores.
func NewBookingService(
	bookingStore store.BookingStore,
	serviceStore store.ServiceStore,
	userStore store.UserStore,
	logger *slog.Logger,
) BookingService {
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

	return &bookingService{
		bookingStore: bookingStore,
		serviceStore: serviceStore,
		userStore:    userStore,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger.With(slog.String("component", "booking_service")),
	}
}

// CreateBooking implements BookingService.CreateBooking.
func (s *bookingService) CreateBooking(
	ctx context.Context,
	principal *domain.Principal,
	input CreateBookingInput,
) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	// Resolve the service first: the booking's total cost is a snapshot
	// of its pricing at this moment and is never re-read afterward.
	service, err := s.serviceStore.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	if !input.PaymentMethod.IsValid() {
		return nil, invalidInput("invalid payment method")
	}

	booking, err := domain.NewBooking(
		input.CustomerID,
		input.ServiceID,
		input.Date,
		service.Pricing,
		input.PaymentMethod,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.bookingStore.Create(ctx, booking); err != nil {
		log.Error("failed to create booking",
			slog.String("error", err.Error()),
			slog.String("customer_id", input.CustomerID.String()),
			slog.String("service_id", input.ServiceID.String()))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info("booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("customer_id", booking.CustomerID.String()),
		slog.String("service_id", booking.ServiceID.String()),
		slog.Float64("total_cost", booking.TotalCost))
	return booking, nil
}

// GetBooking implements BookingService.GetBooking.
func (s *bookingService) GetBooking(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
) (*domain.Booking, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	return s.bookingStore.GetByID(ctx, id)
}

// ListBookingsForCustomer implements BookingService.ListBookingsForCustomer.
func (s *bookingService) ListBookingsForCustomer(
	ctx context.Context,
	principal *domain.Principal,
	customerID uuid.UUID,
) ([]*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	bookings, err := s.bookingStore.FindByCustomer(ctx, customerID)
	if err != nil {
		log.Error("failed to list bookings for customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// ListBookingsForProvider implements BookingService.ListBookingsForProvider.
// It resolves the provider's services, then every booking referencing one
// of them.
func (s *bookingService) ListBookingsForProvider(
	ctx context.Context,
	providerID uuid.UUID,
) ([]*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	services, err := s.serviceStore.FindByProvider(ctx, providerID)
	if err != nil {
		log.Error("failed to resolve provider services",
			slog.String("error", err.Error()),
			slog.String("provider_id", providerID.String()))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	serviceIDs := make([]uuid.UUID, 0, len(services))
	for _, service := range services {
		serviceIDs = append(serviceIDs, service.ID)
	}

	bookings, err := s.bookingStore.FindByServices(ctx, serviceIDs)
	if err != nil {
		log.Error("failed to list bookings for provider",
			slog.String("error", err.Error()),
			slog.String("provider_id", providerID.String()))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus implements BookingService.UpdateStatus.
func (s *bookingService) UpdateStatus(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
	newStatus domain.BookingStatus,
) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	if !newStatus.IsValid() {
		return nil, invalidInput("invalid status")
	}

	booking, err := s.bookingStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The transition is applied unconditionally: the lifecycle edges
	// (pending -> confirmed -> completed, cancel from pending/confirmed)
	// are documentation of the nominal flow, not enforced here.
	if err := s.bookingStore.UpdateStatus(ctx, id, newStatus); err != nil {
		log.Error("failed to update booking status",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()),
			slog.String("status", string(newStatus)))
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = newStatus

	log.Info("booking status updated",
		slog.String("booking_id", id.String()),
		slog.String("status", string(newStatus)),
		slog.String("user_id", principal.ID.String()))
	return booking, nil
}

// DeleteBooking implements BookingService.DeleteBooking.
func (s *bookingService) DeleteBooking(
	ctx context.Context,
	principal *domain.Principal,
	id uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return ErrUnauthenticated
	}

	booking, err := s.bookingStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.CustomerID != principal.ID && principal.Role != domain.RoleProvider {
		log.Warn("booking delete denied",
			slog.String("booking_id", id.String()),
			slog.String("user_id", principal.ID.String()))
		return fmt.Errorf("%w: not authorized to delete this booking", ErrForbidden)
	}

	if err := s.bookingStore.Delete(ctx, id); err != nil {
		log.Error("failed to delete booking",
			slog.String("error", err.Error()),
			slog.String("booking_id", id.String()))
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	log.Info("booking deleted",
		slog.String("booking_id", id.String()),
		slog.String("user_id", principal.ID.String()))
	return nil
}

// MarkPaymentPaid implements BookingService.MarkPaymentPaid.
func (s *bookingService) MarkPaymentPaid(
	ctx context.Context,
	principal *domain.Principal,
	bookingID uuid.UUID,
) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if principal == nil {
		return nil, ErrUnauthenticated
	}

	paidAt := s.now()
	if err := s.bookingStore.UpdatePayment(ctx, bookingID, domain.PaymentPaid, paidAt); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return nil, err
		}
		log.Error("failed to mark payment paid",
			slog.String("error", err.Error()),
			slog.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	booking, err := s.bookingStore.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	log.Info("booking payment marked paid",
		slog.String("booking_id", bookingID.String()),
		slog.String("user_id", principal.ID.String()))
	return booking, nil
}

// ResolveCustomer implements BookingService.ResolveCustomer.
func (s *bookingService) ResolveCustomer(
	ctx context.Context,
	booking *domain.Booking,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, booking.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ResolveService implements BookingService.ResolveService.
func (s *bookingService) ResolveService(
	ctx context.Context,
	booking *domain.Booking,
) (*domain.Service, error) {
	service, err := s.serviceStore.GetByID(ctx, booking.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return service, nil
}
