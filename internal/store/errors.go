package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is the generic version of the entity-specific not found errors
	// (e.g., ErrServiceNotFound, ErrBookingNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references a row that does not exist. Check the
	// wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrServiceNotFound indicates that the requested service does not exist in the store.
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)

	// ErrBookingNotFound indicates that the requested booking does not exist in the store.
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)

	// ErrReviewNotFound indicates that the requested review does not exist in the store.
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist in the store.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCategoryNameExists indicates that a category with the given name already exists.
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)

	// ErrReviewExists indicates that a review for the given booking already exists.
	// Application code checks uniqueness before writing; this error is the
	// storage-level backstop from the unique index on booking_id.
	ErrReviewExists = fmt.Errorf("%w: review for booking", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
