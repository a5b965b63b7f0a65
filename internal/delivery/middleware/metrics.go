package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	skipPath string
}

// NewMetricsMiddleware creates a metrics middleware that ignores scrapes of skipPath.
func NewMetricsMiddleware(skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{skipPath: skipPath}
}

// Handle records the request once the response status is known.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == m.skipPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error has not been rendered yet; report the status it will get.
			status = statusOf(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))

		return err
	}
}

func statusOf(err error) int {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
