package rating

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=rating

// Repository defines the contract for rating storage.
type Repository interface {
	Create(ctx context.Context, r *Rating) error
	GetByID(ctx context.Context, id string) (Rating, error)
	FindByBookUser(ctx context.Context, bookID, userID string) (Rating, error)
	UpdateScore(ctx context.Context, id string, score int) error
	ScoresByBook(ctx context.Context, bookID string) ([]int, error)
	Delete(ctx context.Context, id string) error
}
