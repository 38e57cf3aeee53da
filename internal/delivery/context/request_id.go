// Package context carries request-scoped values from the gateway edge down to
// the backend facade: the request id echoed to the browser and forwarded to
// the backend, and a logger already tagged with it.
package context

import (
	"context"
	"log/slog"
)

// HeaderXRequestID is read from the browser and forwarded to the backend.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// WithRequest stores the request id and a logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = WithRequestID(ctx, requestID)
	if logger != nil {
		ctx = context.WithValue(ctx, loggerKey, logger.With(slog.String("request_id", requestID)))
	}

	return ctx
}

// WithRequestID stores only the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the id of the current request, or "" outside one.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
