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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	dispatcher usecase.EmailDispatcher
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Dispatcher usecase.EmailDispatcher
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates user registration and queues the confirmation mail.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput, baseURL string) (*entity.User, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.NewUserAlreadyExistsError(input.Email)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.NewUserAlreadyExistsError(input.Email)
			}

			return errors.Wrap(err, "failed to create user during signup")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.dispatcher.SendConfirmation(ctx, newUser.Email, newUser.Username, baseURL)
	srv.log(ctx).Info("User signed up", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// RequestConfirmation re-sends the confirmation link. Unknown or confirmed addresses are ignored.
func (srv *accountService) RequestConfirmation(ctx context.Context, email, baseURL string) error {
	user, err := srv.findForMail(ctx, email)
	if err != nil || user == nil {
		return err
	}

	if user.Confirmed {
		srv.log(ctx).Debug("Confirmation requested for confirmed email", slog.String("email", email))

		return nil
	}

	srv.dispatcher.SendConfirmation(ctx, user.Email, user.Username, baseURL)

	return nil
}

// RequestPasswordReset mails a reset link. Unknown addresses are ignored.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	user, err := srv.findForMail(ctx, email)
	if err != nil || user == nil {
		return err
	}

	srv.dispatcher.SendPasswordReset(ctx, user.Email, user.Username, baseURL)

	return nil
}

func (srv *accountService) findForMail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Mail requested for unknown email", slog.String("email", email))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
