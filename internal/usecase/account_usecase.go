package usecase

import (
	"context"

	"contactbook/internal/domain/entity"
)

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// AccountUsecase covers signup and the mail-driven account flows.
type AccountUsecase interface {
	// Signup creates an unconfirmed user and mails a confirmation link built from baseURL.
	Signup(ctx context.Context, input SignupInput, baseURL string) (*entity.User, error)

	// RequestConfirmation re-sends the confirmation link when the user exists and is not confirmed.
	RequestConfirmation(ctx context.Context, email, baseURL string) error

	// RequestPasswordReset mails a reset link when the user exists.
	RequestPasswordReset(ctx context.Context, email, baseURL string) error
}

// EmailDispatcher sends account mail in the background. Failures are logged, never returned.
type EmailDispatcher interface {
	SendConfirmation(ctx context.Context, email, username, baseURL string)
	SendPasswordReset(ctx context.Context, email, username, baseURL string)
}
