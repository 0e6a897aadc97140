package user

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=user

// Repository defines the contract for user storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
