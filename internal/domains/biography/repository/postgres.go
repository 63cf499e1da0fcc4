package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/biography/model"
	"library-api/internal/infrastructure/database"
	"library-api/internal/shared/apperror"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Biography, error) {
	rows, err := r.pool.Query(ctx, `SELECT author_id, content FROM biographies ORDER BY author_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list biographies: %w", err)
	}
	defer rows.Close()

	bios := []model.Biography{}
	for rows.Next() {
		var b model.Biography
		if err := rows.Scan(&b.AuthorID, &b.Content); err != nil {
			return nil, fmt.Errorf("failed to scan biography: %w", err)
		}
		bios = append(bios, b)
	}
	return bios, rows.Err()
}

func (r *postgresRepository) GetByAuthorID(ctx context.Context, authorID int64) (*model.Biography, error) {
	var b model.Biography
	err := r.pool.QueryRow(ctx,
		`SELECT author_id, content FROM biographies WHERE author_id = $1`, authorID,
	).Scan(&b.AuthorID, &b.Content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBiographyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get biography %d: %w", authorID, err)
	}
	return &b, nil
}

// Create relies on the primary key for one-per-author and on the foreign key for author existence.
func (r *postgresRepository) Create(ctx context.Context, b *model.Biography) (*model.Biography, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO biographies (author_id, content) VALUES ($1, $2)`,
		b.AuthorID, b.Content,
	)
	switch {
	case database.IsUniqueViolation(err):
		return nil, model.ErrBiographyExists
	case database.IsForeignKeyViolation(err):
		return nil, apperror.InvalidForeignKey("author with id %d does not exist", b.AuthorID)
	case err != nil:
		return nil, fmt.Errorf("failed to create biography: %w", err)
	}
	created := *b
	return &created, nil
}

func (r *postgresRepository) Replace(ctx context.Context, b *model.Biography) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE biographies SET content = $2 WHERE author_id = $1`, b.AuthorID, b.Content,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update biography %d: %w", b.AuthorID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) Delete(ctx context.Context, authorID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM biographies WHERE author_id = $1`, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete biography %d: %w", authorID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *postgresRepository) ExistsByAuthorID(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM biographies WHERE author_id = $1)`, authorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check biography %d: %w", authorID, err)
	}
	return exists, nil
}
