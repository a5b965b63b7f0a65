package handler

import (
	"contactbook/internal/delivery/api/response"
	"contactbook/internal/delivery/api/validator"
	domainerrors "contactbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindRequest decodes and validates req. When it reports false the error response has been written
// and err is the result of writing it.
func bindRequest(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid request input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.Details(err))
	}

	return true, nil
}
