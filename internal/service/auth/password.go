package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch indicates the supplied password does not match the
// stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordVerifier compares plaintext passwords against stored hashes.
// Hashing at registration time lives in the user store; login only needs
// the comparison half.
type PasswordVerifier interface {
	Compare(ctx context.Context, hashedPassword, password string) error
}

type bcryptVerifier struct{}

// NewBcryptVerifier creates a PasswordVerifier backed by bcrypt.
func NewBcryptVerifier() PasswordVerifier {
	return &bcryptVerifier{}
}

// Compare implements PasswordVerifier.Compare. Returns
// ErrPasswordMismatch on a mismatch and wraps any other bcrypt failure.
func (v *bcryptVerifier) Compare(_ context.Context, hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
