package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/service"
	"github.com/serviceo/serviceo-api/internal/service/auth"
	"github.com/serviceo/serviceo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, service.ErrUnauthenticated):
		return "Not authenticated"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	// Authorization errors
	case errors.Is(err, service.ErrForbidden):
		return "Not authorized"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"

	case errors.Is(err, store.ErrBookingNotFound):
		return "Booking not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrReviewExists):
		return "Review already exists for this booking"

	case errors.Is(err, store.ErrCategoryNameExists):
		return "Category name already exists"

	// Bad request errors
	case errors.Is(err, service.ErrInvalidInput):
		// Invalid-input errors carry a message naming the violated
		// constraint; the constraint is safe to surface.
		msg := err.Error()
		if idx := strings.LastIndex(msg, ": "); idx >= 0 {
			return "Invalid input: " + msg[idx+2:]
		}
		return "Invalid input"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced entity does not exist"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and writes a sanitized error
// response, logging the underlying error. An empty userMessage falls back
// to the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
