package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"contactbook/config"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/errors"
)

func newTestHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, hasher.Check("secret123", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher(nil)

	first, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(nil)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      64,
		MinEntropyBits: 50,
	})

	validPasswords := []string{
		"StrongPass123!",
		"Complex#Secret9",
		"correct horse battery staple",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "expected %q to be accepted", password)
	}

	weakPasswords := []string{
		"short",
		"aaaaaaaaaaaa",
		"password",
		strings.Repeat("Ab1!", 20),
	}
	for _, password := range weakPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.Error(t, err, "expected %q to be rejected", password)
		assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
	}
}

func TestBcryptHasher_EntropyCheckDisabled(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{MinLength: 6})

	assert.NoError(t, hasher.ValidatePasswordStrength("aaaaaa"))
	assert.Error(t, hasher.ValidatePasswordStrength("aaaaa"))
}
