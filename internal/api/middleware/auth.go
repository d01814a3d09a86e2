package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/serviceo/serviceo-api/internal/api/shared"
	"github.com/serviceo/serviceo-api/internal/domain"
	"github.com/serviceo/serviceo-api/internal/service/auth"
)

// AuthMiddleware resolves JWT bearer tokens into a request principal.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Populate resolves an Authorization header, when present, into a principal
// on the request context. Requests without the header pass through
// anonymous; the services decide per operation whether a principal is
// required. A header that is present but invalid is rejected outright.
func (m *AuthMiddleware) Populate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithPrincipal(r.Context(), claims.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require rejects requests that did not resolve to a principal. Mount it
// after Populate on routes that never make sense anonymously.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shared.GetPrincipal(r.Context()) == nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPrincipal extracts the principal from the request context. A nil
// principal means the request is anonymous.
func GetPrincipal(r *http.Request) *domain.Principal {
	return shared.GetPrincipal(r.Context())
}
