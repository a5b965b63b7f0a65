package service

import (
	"errors"
	"time"

	"contactbook/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails signature, format, scope or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the payload of every issued token. Subject carries the user's email.
type TokenClaims struct {
	Scope   entity.TokenKind `json:"scope"`
	Version int              `json:"ver,omitempty"`
	jwt.RegisteredClaims
}

// TokenSpec describes a token to issue. A zero TTL uses the configured window for Kind.
type TokenSpec struct {
	Kind    entity.TokenKind
	Subject string
	Version int
	TTL     time.Duration
}

// TokenService issues and decodes signed, expiring tokens.
type TokenService interface {
	// Issue signs a token for opts.
	Issue(opts TokenSpec) (string, error)

	// Decode verifies the signature, then expiry and scope. Failures wrap ErrInvalidToken.
	Decode(kind entity.TokenKind, token string) (*TokenClaims, error)

	// TTL returns the configured validity window for kind.
	TTL(kind entity.TokenKind) time.Duration

	// HashToken returns the digest stored in place of a raw refresh token.
	HashToken(token string) string
}
