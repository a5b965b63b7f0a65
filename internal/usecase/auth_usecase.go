// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contactbook/internal/domain/entity"
)

// AuthUsecase defines the token lifecycle: login, identity resolution, refresh and email tokens.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login checks credentials of a confirmed user and returns a fresh access/refresh pair.
	Login(ctx context.Context, email, password string) (*entity.TokenPair, error)

	// ResolveCurrentUser maps a bearer access token to its user.
	ResolveCurrentUser(ctx context.Context, accessToken string) (*entity.User, error)

	// Refresh exchanges the stored refresh token for a new pair. A superseded token revokes the stored one.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// IssueEmailToken signs an email-verification token for the address.
	IssueEmailToken(ctx context.Context, email string) (string, error)

	// ConfirmEmail marks the token's user confirmed. alreadyConfirmed reports a repeated confirmation.
	ConfirmEmail(ctx context.Context, token string) (alreadyConfirmed bool, err error)

	// ResetPassword sets a new password for the token's user and revokes their refresh token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
