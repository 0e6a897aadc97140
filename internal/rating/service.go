package rating

import (
	"context"
	"errors"
	"math"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert records score for (bookID, userID). An existing rating keeps its id
// and createdAt and only has its score overwritten; otherwise a new rating is
// created. The boolean reports whether a new row was created.
func (s *Service) Upsert(ctx context.Context, bookID, userID string, score int) (Rating, bool, error) {
	if score < 1 || score > 5 {
		return Rating{}, false, ErrInvalidScore
	}

	existing, err := s.repo.FindByBookUser(ctx, bookID, userID)
	if err == nil {
		if err := s.repo.UpdateScore(ctx, existing.ID, score); err != nil {
			return Rating{}, false, err
		}
		existing.Score = score
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Rating{}, false, err
	}

	created := &Rating{BookID: bookID, UserID: userID, Score: score}
	if err := s.repo.Create(ctx, created); err != nil {
		return Rating{}, false, err
	}
	return *created, true, nil
}

// Aggregate recomputes the average from live data on every call. The average
// is rounded to the nearest 0.5, half rounding up, matching the display the
// client builds its star breakdown from.
func (s *Service) Aggregate(ctx context.Context, bookID string) (Aggregate, error) {
	scores, err := s.repo.ScoresByBook(ctx, bookID)
	if err != nil {
		return Aggregate{}, err
	}
	if len(scores) == 0 {
		return Aggregate{Average: nil, Scores: []int{}}, nil
	}

	sum := 0
	for _, score := range scores {
		sum += score
	}
	average := roundHalf(float64(sum) / float64(len(scores)))
	return Aggregate{Average: &average, Scores: scores}, nil
}

// UpdateScore changes an existing rating's score, keeping createdAt.
func (s *Service) UpdateScore(ctx context.Context, id, requestingUserID string, score int) (Rating, error) {
	if score < 1 || score > 5 {
		return Rating{}, ErrInvalidScore
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Rating{}, err
	}
	if existing.UserID != requestingUserID {
		return Rating{}, ErrForbidden
	}

	if err := s.repo.UpdateScore(ctx, id, score); err != nil {
		return Rating{}, err
	}
	existing.Score = score
	return existing, nil
}

// Delete permanently removes a rating after the ownership check.
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

// roundHalf rounds to the nearest 0.5 with halves rounding up, the same
// policy as Math.round(avg*2)/2 for positive input.
func roundHalf(v float64) float64 {
	return math.Floor(v*2+0.5) / 2
}
