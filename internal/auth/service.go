package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	tokens "studybuddy-backend/internal/shared/auth"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service verifies the single registered credential pair and issues session
// tokens. The pair comes from configuration, not user data.
type Service struct {
	Email    string
	Password string
	Name     string
	TokenTTL time.Duration
}

// Login checks the presented credentials and returns a signed session token.
func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return tokens.Sign(s.Email, s.Name, s.TokenTTL)
}
