// Package context carries request-scoped values (request id, logger, resource) from the
// delivery layer into the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is the type of the keys stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	// KeyResource names the entity a CRUD request operates on, e.g. "Device".
	KeyResource ContextKey = "resource"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c by the request-id middleware, or a
// fresh one when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil when ctx carries no request logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithResource records the resource a request operates on. When ctx already carries a
// request logger, the logger gains a "resource" attribute so service logs name it.
func WithResource(ctx context.Context, resource string) context.Context {
	ctx = context.WithValue(ctx, KeyResource, resource)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("resource", resource)))
	}

	return ctx
}

// GetResource returns "" outside a resource request.
func GetResource(ctx context.Context) string {
	resource, _ := ctx.Value(KeyResource).(string)

	return resource
}
