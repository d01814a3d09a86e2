package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/serviceo/serviceo-api/internal/config"
	"github.com/serviceo/serviceo-api/internal/domain"
)

// Token type claim values.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// jwtClaims is the on-the-wire claim set. Subject carries the user id;
// Role and TokenType are custom claims.
type jwtClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}

type hmacTokenService struct {
	secret          []byte
	tokenLifetime   time.Duration
	refreshLifetime time.Duration
	timeFn          func() time.Time
}

// Verify interface compliance at compile time
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing HS256 tokens with the
// configured secret and lifetimes.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if cfg.TokenLifetimeMinutes <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	if cfg.RefreshLifetimeMinutes <= 0 {
		return nil, errors.New("refresh token lifetime must be positive")
	}

	return &hmacTokenService{
		secret:          []byte(cfg.JWTSecret),
		tokenLifetime:   time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshLifetime: time.Duration(cfg.RefreshLifetimeMinutes) * time.Minute,
		timeFn:          time.Now,
	}, nil
}

// GenerateToken implements TokenService.GenerateToken.
func (s *hmacTokenService) GenerateToken(
	_ context.Context,
	userID uuid.UUID,
	role domain.UserRole,
) (string, error) {
	return s.generate(userID, role, TokenTypeAccess, s.tokenLifetime)
}

// GenerateRefreshToken implements TokenService.GenerateRefreshToken.
func (s *hmacTokenService) GenerateRefreshToken(
	_ context.Context,
	userID uuid.UUID,
	role domain.UserRole,
) (string, error) {
	return s.generate(userID, role, TokenTypeRefresh, s.refreshLifetime)
}

func (s *hmacTokenService) generate(
	userID uuid.UUID,
	role domain.UserRole,
	tokenType string,
	lifetime time.Duration,
) (string, error) {
	now := s.timeFn()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		Role:      string(role),
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken implements TokenService.ValidateToken.
func (s *hmacTokenService) ValidateToken(_ context.Context, tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypeAccess)
}

// ValidateRefreshToken implements TokenService.ValidateRefreshToken.
func (s *hmacTokenService) ValidateRefreshToken(_ context.Context, tokenString string) (*Claims, error) {
	return s.validate(tokenString, TokenTypeRefresh)
}

func (s *hmacTokenService) validate(tokenString, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.timeFn),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject claim", ErrInvalidToken)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: bad role claim", ErrInvalidToken)
	}

	return &Claims{
		UserID:    userID,
		Role:      role,
		TokenType: claims.TokenType,
	}, nil
}
