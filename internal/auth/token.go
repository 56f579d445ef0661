package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/domain"
)

const tokenTTL = 1 * time.Hour

// TokenService issues and verifies HS256 bearer tokens. The signing secret
// is fixed at construction and never leaves the service.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, ttl: tokenTTL, now: time.Now}
}

// NewTokenServiceWithClock is like NewTokenService with an injected time
// source. Tests use it to simulate expiry without sleeping.
func NewTokenServiceWithClock(secret []byte, now func() time.Time) *TokenService {
	return &TokenService{secret: secret, ttl: tokenTTL, now: now}
}

// Issue signs a token for userID expiring one hour from now. Two tokens for
// the same user issued at different instants are distinct and independently
// valid until their own expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature then expiry and returns the token subject.
// Expiry yields domain.ErrTokenExpired; every other failure collapses to
// domain.ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
