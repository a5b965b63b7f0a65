package impl

import (
	"context"
	"testing"

	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	mockRepo "contactbook/internal/mocks/repository"
	mockSvc "contactbook/internal/mocks/service"
	mockUsecase "contactbook/internal/mocks/usecase"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8000/"

type accountServiceFixtures struct {
	service    usecase.AccountUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	dispatcher *mockUsecase.MockEmailDispatcher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		dispatcher: mockUsecase.NewMockEmailDispatcher(t),
	}
	fx.service = NewAccountService(AccountServiceParams{
		TxManager:  fx.txManager,
		UserRepo:   fx.userRepo,
		Hasher:     fx.hasher,
		Dispatcher: fx.dispatcher,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.SignupInput{Username: "annlee", Email: "ann@example.com", Password: "Passw0rd!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)

	fx.dispatcher.EXPECT().SendConfirmation(ctx, input.Email, input.Username, testBaseURL).Return()

	user, err := fx.service.Signup(ctx, input, testBaseURL)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.False(t, user.Confirmed)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.SignupInput{Username: "annlee", Email: "ann@example.com", Password: "Passw0rd!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{Email: input.Email}, nil)

	user, err := fx.service.Signup(ctx, input, testBaseURL)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "User with email: ann@example.com already exists", appErr.Message())
	fx.dispatcher.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Signup_CreateRace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	input := usecase.SignupInput{Username: "annlee", Email: "ann@example.com", Password: "Passw0rd!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(repository.ErrUserAlreadyExists, input.Email))

	_, err := fx.service.Signup(ctx, input, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrWeakPassword)

	_, err := fx.service.Signup(context.Background(), usecase.SignupInput{Username: "annlee", Email: "a@b.co", Password: "123"}, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_RequestConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfirmed user gets mail", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := &entity.User{Email: "ann@example.com", Username: "annlee"}

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.dispatcher.EXPECT().SendConfirmation(ctx, user.Email, user.Username, testBaseURL).Return()

		require.NoError(t, fx.service.RequestConfirmation(ctx, user.Email, testBaseURL))
	})

	t.Run("confirmed user is ignored", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(&entity.User{Email: "ann@example.com", Confirmed: true}, nil)

		require.NoError(t, fx.service.RequestConfirmation(ctx, "ann@example.com", testBaseURL))
	})

	t.Run("unknown email is ignored", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.RequestConfirmation(ctx, "nobody@example.com", testBaseURL))
	})
}

func TestAccountService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("known user gets mail", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := &entity.User{Email: "ann@example.com", Username: "annlee", Confirmed: true}

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.dispatcher.EXPECT().SendPasswordReset(ctx, user.Email, user.Username, testBaseURL).Return()

		require.NoError(t, fx.service.RequestPasswordReset(ctx, user.Email, testBaseURL))
	})

	t.Run("database failure surfaces", func(t *testing.T) {
		fx := createTestAccountService(t)
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find user by email")

		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(nil, dbErr)

		err := fx.service.RequestPasswordReset(ctx, "ann@example.com", testBaseURL)
		assert.True(t, errors.Is(err, dbErr))
	})
}
