package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking lifecycle states. The nominal flow is pending -> confirmed ->
// completed, with pending or confirmed bookings cancellable. Completed and
// cancelled are terminal.
const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

// Supported payment methods: cash on delivery plus the three mobile-money
// operators.
const (
	PayCash   PaymentMethod = "cash"
	PayOrange PaymentMethod = "orange"
	PayMTN    PaymentMethod = "mtn"
	PayMoov   PaymentMethod = "moov"
)

// IsValid reports whether the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayCash, PayOrange, PayMTN, PayMoov:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

// Payment states.
const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the payment status is one of the known states.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Booking-specific validation errors
var (
	// ErrBookingIDEmpty is returned when a booking ID is empty or nil.
	ErrBookingIDEmpty = errors.New("booking ID cannot be empty")

	// ErrBookingCustomerIDEmpty is returned when a booking's customer ID is empty or nil.
	ErrBookingCustomerIDEmpty = errors.New("booking customer ID cannot be empty")

	// ErrBookingServiceIDEmpty is returned when a booking's service ID is empty or nil.
	ErrBookingServiceIDEmpty = errors.New("booking service ID cannot be empty")

	// ErrBookingDateEmpty is returned when a booking's date is the zero time.
	ErrBookingDateEmpty = errors.New("booking date cannot be empty")

	// ErrNegativeTotalCost is returned when a booking's total cost is negative.
	ErrNegativeTotalCost = errors.New("total cost cannot be negative")
)

// Booking ties a customer to a service on a date. TotalCost is a snapshot
// of the service's pricing at creation time; later pricing changes on the
// service do not touch it. PaymentDate is set only when the payment status
// transitions to paid.
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	ServiceID     uuid.UUID     `json:"service_id"`
	Date          time.Time     `json:"date"`
	Status        BookingStatus `json:"status"`
	TotalCost     float64       `json:"total_cost"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewBooking creates a new Booking in the pending state with an unpaid
// payment. totalCost is the service's price at the time of the call; the
// caller is responsible for reading it from the service being booked.
// Returns an error if validation fails.
func NewBooking(
	customerID, serviceID uuid.UUID,
	date time.Time,
	totalCost float64,
	method PaymentMethod,
) (*Booking, error) {
	now := time.Now().UTC()
	booking := &Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		ServiceID:     serviceID,
		Date:          date,
		Status:        BookingPending,
		TotalCost:     totalCost,
		PaymentMethod: method,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := booking.Validate(); err != nil {
		return nil, err
	}

	return booking, nil
}

// Validate checks if the Booking has valid data.
// Returns an error if any field fails validation.
func (b *Booking) Validate() error {
	if b.ID == uuid.Nil {
		return ErrBookingIDEmpty
	}

	if b.CustomerID == uuid.Nil {
		return ErrBookingCustomerIDEmpty
	}

	if b.ServiceID == uuid.Nil {
		return ErrBookingServiceIDEmpty
	}

	if b.Date.IsZero() {
		return ErrBookingDateEmpty
	}

	if !b.Status.IsValid() {
		return ErrInvalidBookingStatus
	}

	if b.TotalCost < 0 {
		return ErrNegativeTotalCost
	}

	if !b.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}

	if !b.PaymentStatus.IsValid() {
		return ErrInvalidPaymentStatus
	}

	return nil
}
