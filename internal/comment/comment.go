package comment

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the referenced comment does not exist.
	ErrNotFound = errors.New("comment not found")

	// ErrForbidden is returned on an ownership mismatch.
	ErrForbidden = errors.New("not the comment owner")
)

// UnknownAuthor is the display name used when a comment's author cannot be
// resolved. Username resolution degrades, it never fails the whole list.
const UnknownAuthor = "Unknown"

// Comment is free text attached to a book. Unlike ratings, a user may leave
// any number of comments on the same book. Username is resolved for display
// and never stored redundantly.
type Comment struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username,omitempty"`
}
