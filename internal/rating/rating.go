package rating

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the referenced rating does not exist.
	ErrNotFound = errors.New("rating not found")

	// ErrForbidden is returned on an ownership mismatch.
	ErrForbidden = errors.New("not the rating owner")

	// ErrInvalidScore is returned for scores outside [1,5], before any write.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
)

// Rating is one user's score for one book. At most one rating exists per
// (book, user) pair; the invariant is enforced by find-then-write in the
// service, not by a database constraint.
type Rating struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Aggregate is the live average and per-score breakdown for a book. Average
// is nil when the book has no ratings; scores are in creation order.
type Aggregate struct {
	Average *float64 `json:"average"`
	Scores  []int    `json:"scores"`
}
