package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contactbook/config"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256-signed JWTs.
type jwtService struct {
	secret []byte
	ttls   map[entity.TokenKind]time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return newJWTService(cfg.SecretKey.Token, map[entity.TokenKind]time.Duration{
		entity.TokenKindAccess:  cfg.Auth.AccessTokenTTL,
		entity.TokenKindRefresh: cfg.Auth.RefreshTokenTTL,
		entity.TokenKindEmail:   cfg.Auth.EmailTokenTTL,
	}, time.Now), nil
}

func newJWTService(secret string, ttls map[entity.TokenKind]time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttls:   ttls,
		now:    now,
	}
}

// Issue signs a token for opts. Every token gets a random ID so two tokens issued
// in the same second never collide.
func (s *jwtService) Issue(opts service.TokenSpec) (string, error) {
	if !opts.Kind.IsValid() {
		return "", errors.Errorf("unknown token kind %q", opts.Kind)
	}
	if opts.Subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = s.TTL(opts.Kind)
	}

	issuedAt := s.now()
	claims := &service.TokenClaims{
		Scope:   opts.Kind,
		Version: opts.Version,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   opts.Subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Decode verifies signature and expiry before looking at the scope.
func (s *jwtService) Decode(kind entity.TokenKind, tokenString string) (*service.TokenClaims, error) {
	claims := &service.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	if claims.Scope != kind {
		return nil, errors.Wrapf(service.ErrInvalidToken, "scope %q does not match %q", claims.Scope, kind)
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "missing subject")
	}

	return claims, nil
}

// TTL returns the configured validity window for kind.
func (s *jwtService) TTL(kind entity.TokenKind) time.Duration {
	return s.ttls[kind]
}

// HashToken returns the hex SHA-256 digest of token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
