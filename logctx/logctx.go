// Package logctx carries a request ID in a context, so that the log lines of
// a single command or scheduled refresh can be correlated.
package logctx

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type rqIDKey struct{}

// WithRequestID returns a copy of ctx carrying a new request ID.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, rqIDKey{}, uuid.NewString())
}

// RequestID returns the request ID carried by ctx, or "".
func RequestID(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// Attr returns the request ID of ctx as a log attribute.
func Attr(ctx context.Context) slog.Attr {
	return slog.String("rqID", RequestID(ctx))
}
