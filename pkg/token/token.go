package token

import (
	"errors"
	"time"

	"clinic-management-api/config"

	"github.com/golang-jwt/jwt/v5"
)

// Service validates the HS256 bearer tokens the hosted deployment issues to
// its clients. It only verifies; minting happens out of band.
type Service struct {
	config config.AuthConfig
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{config: cfg}
}

// Enabled reports whether a signing secret is configured. When it is not,
// the API runs unauthenticated.
func (s *Service) Enabled() bool {
	return s.config.Secret != ""
}

func (s *Service) Validate(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Issue mints a token for the given subject. Used by deployment tooling and
// tests, never by request handling.
func (s *Service) Issue(subject string, expiry time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
