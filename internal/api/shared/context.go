package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/serviceo/serviceo-api/internal/domain"
)

// ContextKey is the key type for request context values.
type ContextKey string

const (
	// PrincipalContextKey is the context key for the authenticated principal.
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16
)

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, principal)
}

// GetPrincipal retrieves the principal from the context. A nil principal
// means the request is anonymous.
func GetPrincipal(ctx context.Context) *domain.Principal {
	principal, ok := ctx.Value(PrincipalContextKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}

// SetTraceID adds a fresh trace ID to the context for log correlation.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random 32-character hex trace ID.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// A missing trace ID only degrades log correlation.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
