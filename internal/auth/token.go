package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yukikurage/todo-api/internal/constants"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

// TokenManager issues and verifies HS256 access tokens whose subject is the
// numeric user id. It holds no mutable state and is safe for concurrent use.
//
// Tokens are not tracked server side: a leaked token stays valid until it expires.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenManager.
type TokenOption func(*TokenManager)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager creates a TokenManager. A non-positive ttl means one hour.
func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) *TokenManager {
	if ttl <= 0 {
		ttl = constants.DefaultAccessTokenTTL
	}

	m := &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for userID valid from now until now+TTL.
func (m *TokenManager) Issue(userID uint64) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the user id carried by tokenString.
// The signature is checked before any claim, so a forged token is always
// ErrTokenInvalid regardless of its expiry.
func (m *TokenManager) Verify(tokenString string) (uint64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}
	return userID, nil
}
