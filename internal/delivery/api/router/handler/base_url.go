package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// baseURL is the origin mailed links are built from: the configured public URL, else the request's own.
func baseURL(c echo.Context, configured string) string {
	if configured != "" {
		return strings.TrimSuffix(configured, "/") + "/"
	}

	return c.Scheme() + "://" + c.Request().Host + "/"
}
