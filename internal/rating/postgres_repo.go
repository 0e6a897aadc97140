package rating

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (repo *PostgresRepo) Create(ctx context.Context, r *Rating) error {
	const query = `
	INSERT INTO ratings (id, book_id, user_id, score)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at
	`
	return repo.db.QueryRow(ctx, query, r.BookID, r.UserID, r.Score).Scan(&r.ID, &r.CreatedAt)
}

func (repo *PostgresRepo) GetByID(ctx context.Context, id string) (Rating, error) {
	const query = `
	SELECT id, book_id, user_id, score, created_at
	FROM ratings
	WHERE id = $1
	LIMIT 1
	`
	var r Rating
	err := repo.db.QueryRow(ctx, query, id).Scan(&r.ID, &r.BookID, &r.UserID, &r.Score, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return r, nil
}

func (repo *PostgresRepo) FindByBookUser(ctx context.Context, bookID, userID string) (Rating, error) {
	const query = `
	SELECT id, book_id, user_id, score, created_at
	FROM ratings
	WHERE book_id = $1 AND user_id = $2
	LIMIT 1
	`
	var r Rating
	err := repo.db.QueryRow(ctx, query, bookID, userID).Scan(&r.ID, &r.BookID, &r.UserID, &r.Score, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return r, nil
}

func (repo *PostgresRepo) UpdateScore(ctx context.Context, id string, score int) error {
	const query = `UPDATE ratings SET score = $2 WHERE id = $1`
	tag, err := repo.db.Exec(ctx, query, id, score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *PostgresRepo) ScoresByBook(ctx context.Context, bookID string) ([]int, error) {
	const query = `
	SELECT score
	FROM ratings
	WHERE book_id = $1
	ORDER BY created_at ASC, id ASC
	`
	rows, err := repo.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (repo *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM ratings WHERE id = $1`
	tag, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
