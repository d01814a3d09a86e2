package api

import (
	"net/http"
	"time"

	"github.com/serviceo/serviceo-api/internal/api/middleware"
	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service"
)

// CreateBookingRequest represents the request body for booking a service.
// The total cost is never part of the request; it is snapshotted from the
// service's current pricing.
type CreateBookingRequest struct {
	CustomerID    string    `json:"customer_id"    validate:"required,uuid"`
	ServiceID     string    `json:"service_id"     validate:"required,uuid"`
	Date          time.Time `json:"date"           validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

// UpdateBookingStatusRequest represents the request body for a status change.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookingHandler handles booking lifecycle HTTP requests.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking handles POST /api/bookings requests.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var req CreateBookingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	customerID, serviceID, ok := parseBookingIDs(w, r, req.CustomerID, req.ServiceID)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), principal, service.CreateBookingInput{
		CustomerID:    customerID,
		ServiceID:     serviceID,
		Date:          req.Date,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, bookingToResponse(booking))
}

// GetBooking handles GET /api/bookings/{id} requests.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(r.Context(), principal, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookingToResponse(booking))
}

// ListCustomerBookings handles GET /api/customers/{id}/bookings requests.
func (h *BookingHandler) ListCustomerBookings(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	customerID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsForCustomer(r.Context(), principal, customerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookingsToResponse(bookings))
}

// ListProviderBookings handles GET /api/providers/{id}/bookings requests.
func (h *BookingHandler) ListProviderBookings(w http.ResponseWriter, r *http.Request) {
	providerID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsForProvider(r.Context(), providerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookingsToResponse(bookings))
}

// UpdateBookingStatus handles PATCH /api/bookings/{id}/status requests.
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	booking, err := h.bookingService.UpdateStatus(r.Context(), principal, id, domain.BookingStatus(req.Status))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookingToResponse(booking))
}

// MarkPaymentPaid handles POST /api/bookings/{id}/payment requests.
func (h *BookingHandler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.MarkPaymentPaid(r.Context(), principal, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookingToResponse(booking))
}

// DeleteBooking handles DELETE /api/bookings/{id} requests.
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(r.Context(), principal, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
