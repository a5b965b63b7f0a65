package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/config"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

const testSecret = "test_secret_key_very_long_for_testing"

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newTestJWTService(clock *testClock) *jwtService {
	return newJWTService(testSecret, map[entity.TokenKind]time.Duration{
		entity.TokenKindAccess:  15 * time.Minute,
		entity.TokenKindRefresh: 7 * 24 * time.Hour,
		entity.TokenKindEmail:   24 * time.Hour,
	}, clock.Now)
}

var allKinds = []entity.TokenKind{entity.TokenKindAccess, entity.TokenKindRefresh, entity.TokenKindEmail}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute}}
	cfg.SecretKey.Token = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, svc.TTL(entity.TokenKindAccess))
}

func TestJWTService_RoundTrip(t *testing.T) {
	clock := &testClock{now: time.Now()}
	svc := newTestJWTService(clock)

	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			token, err := svc.Issue(service.TokenSpec{Kind: kind, Subject: "a@b.com", Version: 3})
			require.NoError(t, err)

			claims, err := svc.Decode(kind, token)
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", claims.Subject)
			assert.Equal(t, kind, claims.Scope)
			assert.Equal(t, 3, claims.Version)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, clock.now.Add(svc.TTL(kind)), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTService_CrossKindRejected(t *testing.T) {
	svc := newTestJWTService(&testClock{now: time.Now()})

	for _, issued := range allKinds {
		token, err := svc.Issue(service.TokenSpec{Kind: issued, Subject: "a@b.com"})
		require.NoError(t, err)

		for _, requested := range allKinds {
			if requested == issued {
				continue
			}

			_, err := svc.Decode(requested, token)
			assert.True(t, errors.Is(err, service.ErrInvalidToken), "%s token accepted as %s", issued, requested)
		}
	}
}

func TestJWTService_Expired(t *testing.T) {
	clock := &testClock{now: time.Now()}
	svc := newTestJWTService(clock)

	token, err := svc.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: "a@b.com", TTL: time.Minute})
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)
	_, err = svc.Decode(entity.TokenKindAccess, token)
	assert.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = svc.Decode(entity.TokenKindAccess, token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(&testClock{now: time.Now()})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "malformed",
			token: func(t *testing.T) string { return "invalid.token.string" },
		},
		{
			name:  "empty",
			token: func(t *testing.T) string { return "" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := newJWTService("another_secret", svc.ttls, svc.now)
				token, err := other.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: "a@b.com"})
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				token, err := svc.Issue(service.TokenSpec{Kind: entity.TokenKindAccess, Subject: "a@b.com"})
				require.NoError(t, err)

				return token[:len(token)-4] + "AAAA"
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				claims := &service.TokenClaims{
					Scope: entity.TokenKindAccess,
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "a@b.com",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)

				return token
			},
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				claims := &service.TokenClaims{
					Scope:            entity.TokenKindAccess,
					RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.com"},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decode(entity.TokenKindAccess, tt.token(t))
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestJWTService_IssueRejectsBadOptions(t *testing.T) {
	svc := newTestJWTService(&testClock{now: time.Now()})

	_, err := svc.Issue(service.TokenSpec{Kind: "bogus", Subject: "a@b.com"})
	assert.Error(t, err)

	_, err = svc.Issue(service.TokenSpec{Kind: entity.TokenKindAccess})
	assert.Error(t, err)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(&testClock{now: time.Now()})

	first, err := svc.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: "a@b.com"})
	require.NoError(t, err)
	second, err := svc.Issue(service.TokenSpec{Kind: entity.TokenKindRefresh, Subject: "a@b.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
	assert.Equal(t, svc.HashToken(first), svc.HashToken(first))
	assert.Len(t, svc.HashToken(first), 64)
}
