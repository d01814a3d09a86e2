package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service"
	"github.com/serviceo/serviceo-api/internal/store"
)

func newBookingRouter(svc service.BookingService) http.Handler {
	h := NewBookingHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/bookings", h.CreateBooking)
	r.Get("/api/bookings/{id}", h.GetBooking)
	r.Patch("/api/bookings/{id}/status", h.UpdateBookingStatus)
	r.Post("/api/bookings/{id}/payment", h.MarkPaymentPaid)
	r.Delete("/api/bookings/{id}", h.DeleteBooking)
	r.Get("/api/providers/{id}/bookings", h.ListProviderBookings)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, principal *domain.Principal) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if principal != nil {
		req = req.WithContext(shared.WithPrincipal(req.Context(), principal))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	principal := &domain.Principal{ID: uuid.New(), Role: domain.RoleCustomer}

	t.Run("creates booking", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		booking := newTestBooking()
		svc.On("CreateBooking", mock.Anything, principal, mock.AnythingOfType("service.CreateBookingInput")).
			Return(booking, nil)

		body := map[string]interface{}{
			"customer_id":    booking.CustomerID.String(),
			"service_id":     booking.ServiceID.String(),
			"date":           booking.Date.Format(time.RFC3339),
			"payment_method": "cash",
		}
		rec := doRequest(t, router, http.MethodPost, "/api/bookings", body, principal)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp BookingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, booking.ID.String(), resp.ID)
		assert.Equal(t, 150.0, resp.TotalCost)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous booking is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		svc.On("CreateBooking", mock.Anything, (*domain.Principal)(nil), mock.AnythingOfType("service.CreateBookingInput")).
			Return(nil, service.ErrUnauthenticated)

		body := map[string]interface{}{
			"customer_id":    uuid.New().String(),
			"service_id":     uuid.New().String(),
			"date":           time.Now().Format(time.RFC3339),
			"payment_method": "cash",
		}
		rec := doRequest(t, router, http.MethodPost, "/api/bookings", body, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown service maps to 404", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		svc.On("CreateBooking", mock.Anything, principal, mock.AnythingOfType("service.CreateBookingInput")).
			Return(nil, store.ErrServiceNotFound)

		body := map[string]interface{}{
			"customer_id":    uuid.New().String(),
			"service_id":     uuid.New().String(),
			"date":           time.Now().Format(time.RFC3339),
			"payment_method": "cash",
		}
		rec := doRequest(t, router, http.MethodPost, "/api/bookings", body, principal)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	t.Parallel()

	principal := &domain.Principal{ID: uuid.New(), Role: domain.RoleProvider}

	t.Run("updates status", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		booking := newTestBooking()
		booking.Status = domain.BookingConfirmed
		svc.On("UpdateStatus", mock.Anything, principal, booking.ID, domain.BookingConfirmed).
			Return(booking, nil)

		rec := doRequest(t, router, http.MethodPatch,
			fmt.Sprintf("/api/bookings/%s/status", booking.ID),
			map[string]string{"status": "confirmed"}, principal)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp BookingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		id := uuid.New()
		svc.On("UpdateStatus", mock.Anything, principal, id, domain.BookingStatus("archived")).
			Return(nil, service.ErrInvalidInput)

		rec := doRequest(t, router, http.MethodPatch,
			fmt.Sprintf("/api/bookings/%s/status", id),
			map[string]string{"status": "archived"}, principal)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		rec := doRequest(t, router, http.MethodPatch,
			"/api/bookings/not-a-uuid/status",
			map[string]string{"status": "confirmed"}, principal)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMarkPaymentPaidHandler(t *testing.T) {
	t.Parallel()

	principal := &domain.Principal{ID: uuid.New(), Role: domain.RoleCustomer}

	svc := new(mockBookingService)
	router := newBookingRouter(svc)

	booking := newTestBooking()
	paidAt := time.Now().UTC()
	booking.PaymentStatus = domain.PaymentPaid
	booking.PaymentDate = &paidAt
	svc.On("MarkPaymentPaid", mock.Anything, principal, booking.ID).Return(booking, nil)

	rec := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/bookings/%s/payment", booking.ID), nil, principal)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "paid", resp.PaymentStatus)
	require.NotNil(t, resp.PaymentDate)
}

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	principal := &domain.Principal{ID: uuid.New(), Role: domain.RoleCustomer}

	t.Run("deletes booking", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		id := uuid.New()
		svc.On("DeleteBooking", mock.Anything, principal, id).Return(nil)

		rec := doRequest(t, router, http.MethodDelete, "/api/bookings/"+id.String(), nil, principal)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		t.Parallel()
		svc := new(mockBookingService)
		router := newBookingRouter(svc)

		id := uuid.New()
		svc.On("DeleteBooking", mock.Anything, principal, id).Return(service.ErrForbidden)

		rec := doRequest(t, router, http.MethodDelete, "/api/bookings/"+id.String(), nil, principal)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestListProviderBookingsHandler(t *testing.T) {
	t.Parallel()

	svc := new(mockBookingService)
	router := newBookingRouter(svc)

	providerID := uuid.New()
	svc.On("ListBookingsForProvider", mock.Anything, providerID).
		Return([]*domain.Booking{newTestBooking()}, nil)

	// No principal: provider booking listings are public reads.
	rec := doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/providers/%s/bookings", providerID), nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}
