// Package token issues and verifies the stateless bearer tokens handed out at
// login. Tokens are HS256 JWTs carrying a user_id and an absolute exp; nothing
// is stored server side, so a token stays valid until it expires.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-contacts-api/internal/model"
)

const DefaultTTL = time.Hour

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now for both issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(secret string, ttl time.Duration, opts ...Option) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for userID that expires ttl after now.
func (m *Manager) Issue(userID int64) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature, then the expiry, then extracts the user id.
// It returns model.ErrTokenInvalid for malformed or mis-signed tokens and
// model.ErrTokenExpired for well-signed tokens past their exp.
func (m *Manager) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}

	if claims.UserID <= 0 {
		return model.TokenClaims{}, fmt.Errorf("%w: missing user_id claim", model.ErrTokenInvalid)
	}

	return model.TokenClaims{UserID: claims.UserID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (m *Manager) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return m.secret, nil
}
