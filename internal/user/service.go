package user

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account. The password must already be hashed by the
// caller.
func (s *Service) Register(ctx context.Context, username, passwordHash string) (User, error) {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	newUser := &User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}

	return *newUser, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// UsernameByID resolves a user id to its display name. Callers that can
// degrade gracefully map ErrNotFound to a sentinel name themselves.
func (s *Service) UsernameByID(ctx context.Context, id string) (string, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
