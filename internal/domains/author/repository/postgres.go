package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/types"
)

// postgresRepository relies on ON DELETE CASCADE for books, biographies and author_events.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectAuthor = `SELECT id, name, birth_date FROM authors`

func scanAuthor(row pgx.Row) (model.Author, error) {
	var (
		a     model.Author
		birth time.Time
	)
	if err := row.Scan(&a.ID, &a.Name, &birth); err != nil {
		return a, err
	}
	a.BirthDate = types.NewDate(birth)
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, selectAuthor+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, selectAuthor+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created, err := scanAuthor(r.pool.QueryRow(ctx, `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING id, name, birth_date
    `, a.Name, a.BirthDate.Time))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Replace(ctx context.Context, a *model.Author) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE authors SET name = $2, birth_date = $3 WHERE id = $1`,
		a.ID, a.Name, a.BirthDate.Time,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update author %d: %w", a.ID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author %d: %w", id, err)
	}
	return exists, nil
}
