// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns contacts and signs in with email and password.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Display name shown in mail greetings.
	Email        string    // Login identifier, matched exactly as stored.
	PasswordHash string    // bcrypt hash of the user's password.
	Confirmed    bool      // Set once the email address has been proven; never reverts.
	// RefreshTokenHash is the SHA-256 digest of the only refresh token currently accepted.
	// Nil means no refresh token is valid and the user must log in again.
	RefreshTokenHash  *string
	EmailTokenVersion int     // Nonce embedded in email tokens; bumped whenever one is consumed.
	Avatar            *string // Public URL of the uploaded avatar.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasRefreshToken reports whether tokenHash is the stored refresh token digest.
func (u *User) HasRefreshToken(tokenHash string) bool {
	return u.RefreshTokenHash != nil && *u.RefreshTokenHash == tokenHash
}
