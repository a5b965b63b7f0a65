package handler

import (
	"log/slog"
	"net/http"

	"contactbook/internal/delivery/api/middleware"
	"contactbook/internal/delivery/api/response"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// avatarFormField is the multipart field carrying the avatar image.
const avatarFormField = "file"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetMe returns the authenticated user.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateAvatar stores an uploaded image as the user's avatar.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	file, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Avatar file is required")
	}

	src, err := file.Open()
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Avatar file could not be read")
	}
	defer src.Close()

	updated, err := h.profileUC.UpdateAvatar(c.Request().Context(), user.ID, file.Header.Get(echo.HeaderContentType), src)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}
