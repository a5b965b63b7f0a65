// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"

	"contactbook/config"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

// bcrypt ignores everything past 72 bytes.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	minLength      int
	maxLength      int
	minEntropyBits float64
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:      bcrypt.DefaultCost,
		maxLength: bcryptMaxPasswordBytes,
	}

	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if hasher.cost < bcrypt.MinCost || hasher.cost > bcrypt.MaxCost {
		hasher.cost = bcrypt.DefaultCost
	}

	if strength := cfg.PasswordStrength; strength != nil {
		hasher.minLength = strength.MinLength
		if strength.MaxLength > 0 && strength.MaxLength < bcryptMaxPasswordBytes {
			hasher.maxLength = strength.MaxLength
		}
		hasher.minEntropyBits = strength.MinEntropyBits
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks length bounds and, when configured, the estimated entropy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if length := utf8.RuneCountInString(password); length < h.minLength {
		return domainerrors.ErrWeakPassword.WithMessagef("Password must be at least %d characters", h.minLength)
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrWeakPassword.WithMessagef("Password must be at most %d bytes", h.maxLength)
	}

	if h.minEntropyBits > 0 {
		if err := passwordvalidator.Validate(password, h.minEntropyBits); err != nil {
			return domainerrors.ErrWeakPassword.WithDetails(err.Error())
		}
	}

	return nil
}
