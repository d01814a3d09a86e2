// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone is returned when a phone number is malformed.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidRole is returned when a user role is not one of the known roles.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidBookingStatus is returned when a booking status is not valid.
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentMethod is returned when a payment method is not valid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPaymentStatus is returned when a payment status is not valid.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidRating is returned when a review rating is outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidPricing is returned when a service price is negative.
	ErrInvalidPricing = errors.New("pricing must be a positive number")
)
