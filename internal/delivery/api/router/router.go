// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"contactbook/config"
	"contactbook/internal/delivery/api/middleware"
	"contactbook/internal/delivery/api/router/handler"
	domainerrors "contactbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth", r.rateLimiter()...)
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/refresh_token", r.authHandler.RefreshToken)
		authGroup.GET("/confirmed_email/:token", r.authHandler.ConfirmEmail)
		authGroup.POST("/request_email", r.authHandler.RequestEmail)
		authGroup.POST("/reset_password", r.authHandler.ResetPassword)
		authGroup.PATCH("/change_password/:token", r.authHandler.ChangePassword)
	}

	// User routes that require authentication
	userGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("/avatar", r.userHandler.UpdateAvatar)
	}

	// Contact routes, always scoped to the authenticated user
	contactsGroup := api.Group("/contacts", r.rateLimiter()...)
	contactsGroup.Use(r.authMiddleware.Authenticate)
	{
		contactsGroup.GET("", r.contactHandler.ListContacts)
		contactsGroup.POST("", r.contactHandler.CreateContact)
		contactsGroup.GET("/search", r.contactHandler.SearchContacts)
		contactsGroup.GET("/birthdays", r.contactHandler.UpcomingBirthdays)
		contactsGroup.GET("/firstname/:first_name", r.contactHandler.GetContactByFirstName)
		contactsGroup.GET("/lastname/:last_name", r.contactHandler.GetContactByLastName)
		contactsGroup.GET("/email/:email", r.contactHandler.GetContactByEmail)
		contactsGroup.GET("/:id", r.contactHandler.GetContact)
		contactsGroup.DELETE("/:id", r.contactHandler.DeleteContact)
		contactsGroup.GET("/:id/qrcode", r.contactHandler.ContactQRCode)
		contactsGroup.PATCH("/:id/first_name", r.contactHandler.UpdateFirstName)
		contactsGroup.PATCH("/:id/last_name", r.contactHandler.UpdateLastName)
		contactsGroup.PATCH("/:id/email", r.contactHandler.UpdateEmail)
		contactsGroup.PATCH("/:id/phone", r.contactHandler.UpdatePhone)
		contactsGroup.PATCH("/:id/birthdate", r.contactHandler.UpdateBirthDate)
		contactsGroup.PATCH("/:id/description", r.contactHandler.UpdateDescription)
	}
}

// rateLimiter returns the per-IP limiter for a route group, or nothing when disabled.
// Each group gets its own store.
func (r *router) rateLimiter() []echo.MiddlewareFunc {
	cfg := r.config.RateLimit
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client")
			},
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return domainerrors.ErrTooManyRequests
			},
		}),
	}
}
