package auth

import (
	"context"
	"errors"
	"time"

	"bookradar/internal/platform/crypto"
	"bookradar/internal/user"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password; callers must not be able to tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type Service struct {
	secret string
	users  *user.Service
}

func NewService(secret string, users *user.Service) *Service {
	return &Service{secret: secret, users: users}
}

// Register creates an account and signs a token for immediate login.
func (s *Service) Register(ctx context.Context, username, password string) (token, userID string, err error) {
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return "", "", err
	}

	u, err := s.users.Register(ctx, username, passwordHash)
	if err != nil {
		return "", "", err
	}

	token, err = crypto.GenerateToken(s.secret, u.ID, tokenTTL)
	if err != nil {
		return "", "", err
	}
	return token, u.ID, nil
}

// Login verifies the credentials and signs a fresh token.
func (s *Service) Login(ctx context.Context, username, password string) (token, userID string, err error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return "", "", ErrInvalidCredentials
	}

	token, err = crypto.GenerateToken(s.secret, u.ID, tokenTTL)
	if err != nil {
		return "", "", err
	}
	return token, u.ID, nil
}
