package handler

import (
	"log/slog"
	"net/http"

	"contactbook/config"
	"contactbook/internal/delivery/api/middleware"
	"contactbook/internal/delivery/api/response"
	"contactbook/internal/delivery/api/validator"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	signupDetail       = "User successfully created. Check your email for confirmation."
	checkEmailMessage  = "Check your email for further information"
	emailConfirmed     = "Email confirmed"
	emailAlreadyDone   = "Email is already confirmed"
	passwordChangedMsg = "Password changed"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves signup, login, token refresh and the mailed-link flows.
type AuthHandler struct {
	authUC        usecase.AuthUsecase
	accountUC     usecase.AccountUsecase
	publicBaseURL string
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:        params.AuthUC,
		accountUC:     params.AccountUC,
		publicBaseURL: params.Config.HTTP.PublicBaseURL,
		logger:        params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=5,max=16"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

// LoginRequest accepts the email either as "email" or as the OAuth2 form field "username".
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required_without=Username,omitempty,email"`
	Username string `json:"username" form:"username" validate:"required_without=Email,omitempty,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) login() string {
	if r.Email != "" {
		return r.Email
	}

	return r.Username
}

// EmailRequest represents the request body of the mail-me endpoints.
type EmailRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ChangePasswordRequest represents the request body for a password reset.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=6,max=72"`
}

// Signup handles account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	user, err := h.accountUC.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, baseURL(c, h.publicBaseURL))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SignupResponse{
		User:   newUserResponse(user),
		Detail: signupDetail,
	})
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	pair, err := h.authUC.Login(c.Request().Context(), req.login(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, newTokenResponse(pair))
}

// RefreshToken rotates the bearer refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	pair, err := h.authUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(pair))
}

// ConfirmEmail consumes a mailed confirmation token.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	alreadyConfirmed, err := h.authUC.ConfirmEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if alreadyConfirmed {
		return response.Message(c, http.StatusOK, emailAlreadyDone)
	}

	return response.Message(c, http.StatusOK, emailConfirmed)
}

// RequestEmail re-sends the confirmation mail. The answer never reveals whether the address exists.
func (h *AuthHandler) RequestEmail(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.accountUC.RequestConfirmation(c.Request().Context(), req.Email, baseURL(c, h.publicBaseURL)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, checkEmailMessage)
}

// ResetPassword mails a password reset link. The answer never reveals whether the address exists.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.accountUC.RequestPasswordReset(c.Request().Context(), req.Email, baseURL(c, h.publicBaseURL)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, checkEmailMessage)
}

// ChangePassword sets a new password using a mailed reset token.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), c.Param("token"), req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, passwordChangedMsg)
}
