package impl

import (
	"context"
	"testing"
	"time"

	"contactbook/config"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/infra/auth"
	mockRepo "contactbook/internal/mocks/repository"
	mockSvc "contactbook/internal/mocks/service"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService service.TokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			EmailTokenTTL:   24 * time.Hour,
		},
	}
	cfg.SecretKey.Token = "test-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: tokenService,
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func confirmedUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "annlee",
		Email:        "ann@example.com",
		PasswordHash: "hashed",
		Confirmed:    true,
	}
}

func TestAuthService_Login_ThenResolveCurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)

	var storedHash *string
	fx.userRepo.EXPECT().
		UpdateRefreshToken(ctx, user.ID, mock.AnythingOfType("*string")).
		Run(func(_ context.Context, _ uuid.UUID, tokenHash *string) { storedHash = tokenHash }).
		Return(nil)

	pair, err := fx.service.Login(ctx, user.Email, "secret1")
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeBearer, pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	require.NotNil(t, storedHash)
	assert.Equal(t, fx.tokenService.HashToken(pair.RefreshToken), *storedHash)

	current, err := fx.service.ResolveCurrentUser(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	pair, err := fx.service.Login(ctx, "nobody@example.com", "secret1")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEmail))
}

func TestAuthService_Login_UnconfirmedNeverChecksPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()
	user.Confirmed = false

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := fx.service.Login(ctx, user.Email, "secret1")

	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotConfirmed))
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, user.Email, "wrong")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid password", appErr.Message())
	fx.userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResolveCurrentUser_Rejects(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	refresh, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: "ann@example.com"})
	require.NoError(t, err)
	orphan, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: "gone@example.com"})
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	for name, token := range map[string]string{
		"garbage":         "not-a-token",
		"refresh token":   refresh,
		"unknown subject": orphan,
	} {
		t.Run(name, func(t *testing.T) {
			user, err := fx.service.ResolveCurrentUser(ctx, token)

			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()

	current, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: user.Email})
	require.NoError(t, err)
	currentHash := fx.tokenService.HashToken(current)
	user.RefreshTokenHash = &currentHash

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)

	var storedHash *string
	txUserRepo.EXPECT().
		UpdateRefreshToken(ctx, user.ID, mock.AnythingOfType("*string")).
		Run(func(_ context.Context, _ uuid.UUID, tokenHash *string) { storedHash = tokenHash }).
		Return(nil)

	pair, err := fx.service.Refresh(ctx, current)
	require.NoError(t, err)

	assert.NotEqual(t, current, pair.RefreshToken)
	require.NotNil(t, storedHash)
	assert.Equal(t, fx.tokenService.HashToken(pair.RefreshToken), *storedHash)
}

func TestAuthService_Refresh_SupersededTokenRevokes(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()

	stale, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: user.Email})
	require.NoError(t, err)
	newer := "digest-of-a-newer-token"
	user.RefreshTokenHash = &newer

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
	txUserRepo.EXPECT().UpdateRefreshToken(ctx, user.ID, (*string)(nil)).Return(nil)

	pair, err := fx.service.Refresh(ctx, stale)

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	access, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: "ann@example.com"})
	require.NoError(t, err)

	_, err = fx.service.Refresh(context.Background(), access)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_UnknownSubject(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	token, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: "gone@example.com"})
	require.NoError(t, err)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	_, err = fx.service.Refresh(ctx, token)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_IssueEmailToken_CarriesVersion(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()
	user.EmailTokenVersion = 3

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	token, err := fx.service.IssueEmailToken(ctx, user.Email)
	require.NoError(t, err)
	claims, err := fx.tokenService.Decode(entity.TokenKindEmail, token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.Version)
	assert.Equal(t, user.Email, claims.Subject)

	token, err = fx.service.IssueEmailToken(ctx, "nobody@example.com")
	require.NoError(t, err)
	claims, err = fx.tokenService.Decode(entity.TokenKindEmail, token)
	require.NoError(t, err)
	assert.Zero(t, claims.Version)
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()
	user.Confirmed = false

	token, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindEmail, Subject: user.Email})
	require.NoError(t, err)

	t.Run("first confirmation marks the user", func(t *testing.T) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		expectTx(t, fx.txManager, txUserRepo)
		txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
		txUserRepo.EXPECT().MarkConfirmed(ctx, user.ID).Return(nil)

		already, err := fx.service.ConfirmEmail(ctx, token)
		require.NoError(t, err)
		assert.False(t, already)
	})

	t.Run("second confirmation is reported and changes nothing", func(t *testing.T) {
		confirmed := *user
		confirmed.Confirmed = true
		confirmed.EmailTokenVersion = 1

		txUserRepo := mockRepo.NewMockUserRepository(t)
		expectTx(t, fx.txManager, txUserRepo)
		txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(&confirmed, nil)

		already, err := fx.service.ConfirmEmail(ctx, token)
		require.NoError(t, err)
		assert.True(t, already)
		txUserRepo.AssertNotCalled(t, "MarkConfirmed", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ConfirmEmail_Rejects(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()
	user.Confirmed = false
	user.EmailTokenVersion = 2

	stale, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindEmail, Subject: user.Email, Version: 1})
	require.NoError(t, err)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)

	_, err = fx.service.ConfirmEmail(ctx, stale)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationFailed))

	_, err = fx.service.ConfirmEmail(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationFailed))
}

func TestAuthService_ResetPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()

	token, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindEmail, Subject: user.Email})
	require.NoError(t, err)

	fx.hasher.EXPECT().ValidatePasswordStrength("n3w-Passw0rd").Return(nil)
	fx.hasher.EXPECT().Hash("n3w-Passw0rd").Return("new-hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)
	txUserRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)

	require.NoError(t, fx.service.ResetPassword(ctx, token, "n3w-Passw0rd"))
}

func TestAuthService_ResetPassword_SingleUse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser()
	// A previous reset already consumed version 0.
	user.EmailTokenVersion = 1

	token, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindEmail, Subject: user.Email})
	require.NoError(t, err)

	fx.hasher.EXPECT().ValidatePasswordStrength("n3w-Passw0rd").Return(nil)
	fx.hasher.EXPECT().Hash("n3w-Passw0rd").Return("new-hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, txUserRepo)
	txUserRepo.EXPECT().FindByEmailForUpdate(ctx, user.Email).Return(user, nil)

	err = fx.service.ResetPassword(ctx, token, "n3w-Passw0rd")

	assert.True(t, errors.Is(err, domainerrors.ErrVerificationFailed))
	txUserRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	token, err := fx.tokenService.Issue(service.TokenSpec{Kind: entity.TokenKindEmail, Subject: "ann@example.com"})
	require.NoError(t, err)

	fx.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrWeakPassword)

	err = fx.service.ResetPassword(context.Background(), token, "123")

	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
