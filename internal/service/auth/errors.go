// Package auth provides JWT token management and password hashing for the
// authentication boundary. The token service is constructor-injected into
// the request-context builder; nothing here registers global state.
package auth

import "errors"

// Token validation errors.
var (
	// ErrInvalidToken indicates the token is malformed, has a bad
	// signature, or carries unusable claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrWrongTokenType indicates an access token was presented where a
	// refresh token was required, or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")
)
