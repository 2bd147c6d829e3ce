// Package net holds transport-neutral request helpers: ids on the context and
// the reply envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequestID stores reqID where chi's RequestID middleware would, so
// RequestID works for handlers invoked outside the router too
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
