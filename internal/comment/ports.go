package comment

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=comment

// Repository defines the contract for comment storage. ListByBook resolves
// author usernames in the same round trip.
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (Comment, error)
	ListByBook(ctx context.Context, bookID string) ([]Comment, error)
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}

// UsernameResolver resolves a user id to a display name. The user service
// satisfies it.
type UsernameResolver interface {
	UsernameByID(ctx context.Context, userID string) (string, error)
}
