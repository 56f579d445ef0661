// Package requestid correlates log records with the HTTP request that
// produced them. IDs travel in the Header field and in context values.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header that carries the request ID.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh random request ID.
func New() string {
	return uuid.NewString()
}

// WithRequestID attaches id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
