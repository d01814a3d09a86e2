package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// TokenService defines operations for managing JWT authentication tokens.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the user's id
	// and role.
	GenerateToken(ctx context.Context, userID uuid.UUID, role domain.UserRole) (string, error)

	// ValidateToken validates an access token string and extracts its
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure, and
	// ErrWrongTokenType when handed a refresh token.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed refresh token with a longer
	// lifetime, used to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID, role domain.UserRole) (string, error)

	// ValidateRefreshToken validates a refresh token string and extracts
	// its claims. Returns ErrWrongTokenType when handed an access token.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token: enough to build the
// caller's principal without a database round-trip.
type Claims struct {
	UserID    uuid.UUID
	Role      domain.UserRole
	TokenType string
}

// Principal converts the claims into the domain principal handed to
// service operations.
func (c *Claims) Principal() *domain.Principal {
	return &domain.Principal{
		ID:   c.UserID,
		Role: c.Role,
	}
}
