// Package service implements the application core: the service catalog,
// the booking lifecycle, review aggregation, and the category registry,
// all over the store interfaces and gated by the caller's principal.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is(); the API layer maps them to HTTP
// status codes.
//
// The four conditions are terminal and user-visible: none is retryable.
// Store-layer NotFound sentinels pass through the services unchanged, so
// the full taxonomy a caller sees is: ErrUnauthenticated, ErrForbidden,
// store.ErrNotFound (and its entity wrappers), and ErrInvalidInput.
var (
	// ErrUnauthenticated indicates the operation requires a principal and
	// none was supplied. API layer should map this to HTTP 401.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden indicates the principal is present but lacks the
	// ownership or role the operation requires. API layer should map this
	// to HTTP 403.
	ErrForbidden = errors.New("not authorized")

	// ErrInvalidInput indicates a value failed a domain constraint: an
	// unknown enum value, an out-of-range rating or price, a duplicate
	// review, or a booking in the wrong state. Usually wrapped with a
	// message naming the constraint. API layer should map this to HTTP 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates a login attempt with an unknown
	// email or a wrong password. Deliberately indistinguishable between
	// the two cases. API layer should map this to HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// invalidInput wraps ErrInvalidInput with a message naming the violated
// constraint.
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
