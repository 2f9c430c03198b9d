// Package auth issues and verifies the HS256 tokens that gate HR-only
// endpoints.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles understood by the authorization middleware.
const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// ErrInvalidToken covers every verification failure.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the identity contained in a token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signer signs and verifies tokens with a shared secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner constructs a Signer. An empty secret falls back to a dev-only
// value; production deployments must set one.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if strings.TrimSpace(secret) == "" {
		secret = "dev-secret"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token for the given subject and role.
func (s *Signer) Sign(subject, role string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if role != RoleHR && role != RoleEmployee {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token signature and expiry and returns its claims.
func (s *Signer) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
