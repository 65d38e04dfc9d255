// Package session mints and validates the admin console session token.
//
// The console never stores upstream credentials: a successful upstream login
// yields a bearer token, which is sealed inside an HS256 JWT and handed to
// the browser as an HttpOnly cookie. Every request re-opens the JWT to
// recover the upstream token, so a cleared cookie immediately stops
// authenticated upstream calls.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
)

type Claims struct {
	Email         string `json:"email"`
	UpstreamToken string `json:"upstream_token"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	duration  time.Duration
}

func NewService(secretKey string, duration time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		duration:  duration,
	}
}

// Issue seals the upstream bearer token into a signed session token.
func (s *Service) Issue(email, upstreamToken string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:         email,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
