package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes customers from service providers.
type UserRole string

// Known user roles.
const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrUserNameEmpty is returned when a user's name is empty.
	ErrUserNameEmpty = errors.New("user name cannot be empty")

	// ErrUserEmailEmpty is returned when a user's email is empty.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrUserPhoneEmpty is returned when a user's phone number is empty.
	ErrUserPhoneEmpty = errors.New("user phone cannot be empty")
)

// emailPattern is intentionally loose; it rejects obvious garbage and
// leaves strict verification to the email round-trip.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePattern accepts local and international formats with optional
// separators, 8 digits minimum.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s-]{7,14}$`)

// Coordinates is an optional latitude/longitude pair attached to a Location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes where a user lives or where a service is offered.
type Location struct {
	City        string       `json:"city"`
	District    string       `json:"district"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// User represents an account on the platform, either a customer who books
// services or a provider who offers them. The plaintext Password field is
// transient: it is set on registration, hashed by the store, and never
// persisted or serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Role           UserRole  `json:"role"`
	Location       Location  `json:"location"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with a generated ID and creation timestamp.
// The password is kept in plaintext on the transient field; hashing is the
// store's responsibility. Returns an error if validation fails.
func NewUser(email, password, name, phone string, role UserRole, location Location) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		Name:      strings.TrimSpace(name),
		Phone:     phone,
		Role:      role,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if u.Phone == "" {
		return ErrUserPhoneEmpty
	}

	if !phonePattern.MatchString(u.Phone) {
		return ErrInvalidPhone
	}

	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	// A password is only present during registration; when it is, it must
	// meet the minimum length.
	if u.Password != "" && len(u.Password) < 6 {
		return ErrInvalidPassword
	}

	return nil
}
