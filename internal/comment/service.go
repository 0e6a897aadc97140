package comment

import "context"

type Service struct {
	repo  Repository
	users UsernameResolver
}

func NewService(repo Repository, users UsernameResolver) *Service {
	return &Service{repo: repo, users: users}
}

// Create stores a new comment and attaches the author's username for
// display. A failed username lookup degrades to UnknownAuthor.
func (s *Service) Create(ctx context.Context, bookID, userID, text string) (Comment, error) {
	created := &Comment{BookID: bookID, UserID: userID, Text: text}
	if err := s.repo.Create(ctx, created); err != nil {
		return Comment{}, err
	}

	username, err := s.users.UsernameByID(ctx, userID)
	if err != nil {
		username = UnknownAuthor
	}
	created.Username = username
	return *created, nil
}

// ListByBook returns a book's comments newest first, each annotated with its
// author's username.
func (s *Service) ListByBook(ctx context.Context, bookID string) ([]Comment, error) {
	return s.repo.ListByBook(ctx, bookID)
}

// Update replaces a comment's text after the ownership check; createdAt is
// untouched.
func (s *Service) Update(ctx context.Context, id, requestingUserID, text string) (Comment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Comment{}, err
	}
	if existing.UserID != requestingUserID {
		return Comment{}, ErrForbidden
	}

	if err := s.repo.UpdateText(ctx, id, text); err != nil {
		return Comment{}, err
	}
	existing.Text = text
	return existing, nil
}

// Delete permanently removes a comment after the ownership check.
func (s *Service) Delete(ctx context.Context, id, requestingUserID string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != requestingUserID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
