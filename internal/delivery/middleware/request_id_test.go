package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesWellFormedClientID(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)

	var fromCtx string
	e.GET("/", func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id-1", fromCtx)
}

func TestRequestIDMiddleware_ReplacesUnusableClientID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "too long", id: strings.Repeat("a", maxClientRequestIDLength+1)},
		{name: "control characters", id: "abc\tdef"},
		{name: "spaces", id: "abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.id)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, tt.id, got)
		})
	}
}

func newLoggedEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e, &buf
}

func TestLoggerMiddleware_LogsFailuresWithRenderedStatus(t *testing.T) {
	e, buf := newLoggedEcho(t, false)
	e.GET("/api/contacts/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})
	e.GET("/api/contacts", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/contacts/1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"route":"/api/contacts/:id"`)
	assert.Contains(t, lines[0], `"request_id"`)
	assert.Contains(t, lines[0], `"level":"WARN"`)
}

func TestLoggerMiddleware_DebugSkipsProbeRoutes(t *testing.T) {
	e, buf := newLoggedEcho(t, true)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/users/me", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	assert.Contains(t, buf.String(), `"route":"/api/users/me"`)
}
