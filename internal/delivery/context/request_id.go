// Package context carries request-scoped values (request ID, logger, current user)
// from the delivery layer into the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"contactbook/internal/domain/entity"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// Keys used in echo.Context's store.
const (
	echoRequestIDKey   = "request_id"
	echoCurrentUserKey = "current_user"
)

// HeaderXRequestID is the HTTP header carrying the request ID in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// GetRequestID returns the request ID assigned by the request ID middleware.
// Requests that bypassed it get a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID records requestID on c and on the request's context.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestIDFromContext returns the request ID stored in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetCurrentUser stores the authenticated user on c. When the request carries a
// scoped logger, later log lines for the request are tagged with the user ID.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(echoCurrentUserKey, user)

	req := c.Request()
	if logger := GetLogger(req.Context()); logger != nil && user != nil {
		tagged := logger.With(slog.String("user_id", user.ID.String()))
		c.SetRequest(req.WithContext(WithLogger(req.Context(), tagged)))
	}
}

// GetCurrentUser returns the user set by the authentication middleware.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(echoCurrentUserKey).(*entity.User)

	return user, ok && user != nil
}
