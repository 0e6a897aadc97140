package comment

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

func (repo *PostgresRepo) Create(ctx context.Context, c *Comment) error {
	const query = `
	INSERT INTO comments (id, book_id, user_id, text)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at
	`
	return repo.db.QueryRow(ctx, query, c.BookID, c.UserID, c.Text).Scan(&c.ID, &c.CreatedAt)
}

func (repo *PostgresRepo) GetByID(ctx context.Context, id string) (Comment, error) {
	const query = `
	SELECT id, book_id, user_id, text, created_at
	FROM comments
	WHERE id = $1
	LIMIT 1
	`
	var c Comment
	err := repo.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.BookID, &c.UserID, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

// ListByBook resolves usernames in one join instead of a lookup per comment.
func (repo *PostgresRepo) ListByBook(ctx context.Context, bookID string) ([]Comment, error) {
	const query = `
	SELECT c.id, c.book_id, c.user_id, c.text, c.created_at, COALESCE(u.username, 'Unknown')
	FROM comments c
	LEFT JOIN users u ON u.id = c.user_id
	WHERE c.book_id = $1
	ORDER BY c.created_at DESC, c.id DESC
	`
	rows, err := repo.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.BookID, &c.UserID, &c.Text, &c.CreatedAt, &c.Username); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (repo *PostgresRepo) UpdateText(ctx context.Context, id, text string) error {
	const query = `UPDATE comments SET text = $2 WHERE id = $1`
	tag, err := repo.db.Exec(ctx, query, id, text)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = $1`
	tag, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
