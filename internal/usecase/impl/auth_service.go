// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, email, password string) (*entity.TokenPair, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !user.Confirmed {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "email not confirmed"))

		return nil, errors.Wrap(domainerrors.ErrEmailNotConfirmed, "login failed")
	}

	// bcrypt is CPU-bound; nothing is held open while it runs.
	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login failed")
	}

	pair, err := srv.issuePair(user.Email)
	if err != nil {
		return nil, err
	}

	tokenHash := srv.tokenService.HashToken(pair.RefreshToken)
	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, &tokenHash); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return pair, nil
}

// ResolveCurrentUser decodes an access token and loads its user.
func (srv *authService) ResolveCurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Decode(entity.TokenKindAccess, accessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "decode access token")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject has no user")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// Refresh rotates the refresh token. The stored digest is checked and replaced under a row lock
// so two concurrent refreshes with the same token cannot both succeed.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.Decode(entity.TokenKindRefresh, refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "decode refresh token")
	}

	presentedHash := srv.tokenService.HashToken(refreshToken)

	var (
		pair    *entity.TokenPair
		revoked bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmailForUpdate(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "token subject has no user")
			}

			return errors.Wrap(err, "failed to lock user for refresh")
		}

		if !user.HasRefreshToken(presentedHash) {
			// A superseded token was replayed; revoke the current one too. Committed, not rolled back.
			revoked = true

			return errors.Wrap(userRepo.UpdateRefreshToken(ctx, user.ID, nil), "failed to revoke refresh token")
		}

		pair, err = srv.issuePair(user.Email)
		if err != nil {
			return err
		}

		newHash := srv.tokenService.HashToken(pair.RefreshToken)

		return errors.Wrap(userRepo.UpdateRefreshToken(ctx, user.ID, &newHash), "failed to store refresh token")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	if revoked {
		srv.log(ctx).Warn("Refresh token mismatch, stored token revoked", slog.String("email", claims.Subject))

		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
	}

	return pair, nil
}

// IssueEmailToken signs an email token bound to the user's current token version.
func (srv *authService) IssueEmailToken(ctx context.Context, email string) (string, error) {
	version := 0

	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		version = user.EmailTokenVersion
	case errors.Is(err, repository.ErrUserNotFound):
		// Unknown addresses get version 0.
	default:
		return "", errors.Wrap(err, "failed to load user for email token")
	}

	token, err := srv.tokenService.Issue(service.TokenSpec{
		Kind:    entity.TokenKindEmail,
		Subject: email,
		Version: version,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to issue email token")
	}

	return token, nil
}

// ConfirmEmail consumes an email token to confirm its address.
func (srv *authService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	claims, err := srv.tokenService.Decode(entity.TokenKindEmail, token)
	if err != nil {
		return false, errors.Wrap(domainerrors.ErrVerificationFailed, "decode email token")
	}

	var alreadyConfirmed bool

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.lockEmailTokenUser(ctx, userRepo, claims.Subject)
		if err != nil {
			return err
		}

		if user.Confirmed {
			alreadyConfirmed = true

			return nil
		}

		if claims.Version != user.EmailTokenVersion {
			return errors.Wrap(domainerrors.ErrVerificationFailed, "stale email token")
		}

		return errors.Wrap(userRepo.MarkConfirmed(ctx, user.ID), "failed to confirm email")
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute confirmation transaction")
	}

	srv.log(ctx).Info("Email confirmation processed",
		slog.String("email", claims.Subject),
		slog.Bool("already_confirmed", alreadyConfirmed),
	)

	return alreadyConfirmed, nil
}

// ResetPassword consumes an email token to set a new password.
func (srv *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := srv.tokenService.Decode(entity.TokenKindEmail, token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrVerificationFailed, "decode email token")
	}

	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.lockEmailTokenUser(ctx, userRepo, claims.Subject)
		if err != nil {
			return err
		}

		if claims.Version != user.EmailTokenVersion {
			return errors.Wrap(domainerrors.ErrVerificationFailed, "stale email token")
		}

		return errors.Wrap(userRepo.UpdatePassword(ctx, user.ID, hashedPassword), "failed to update password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password changed", slog.String("email", claims.Subject))

	return nil
}

func (srv *authService) lockEmailTokenUser(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
	user, err := userRepo.FindByEmailForUpdate(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVerificationFailed, "email token subject has no user")
		}

		return nil, errors.Wrap(err, "failed to lock user for email token")
	}

	return user, nil
}

func (srv *authService) issuePair(email string) (*entity.TokenPair, error) {
	accessToken, err := srv.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return entity.NewTokenPair(accessToken, refreshToken), nil
}
