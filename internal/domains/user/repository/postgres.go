package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/user/model"
	"library-api/internal/infrastructure/database"
)

// postgresRepository hides the implementation behind RepositoryInterface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	var created model.User
	err := r.pool.QueryRow(ctx, `
        INSERT INTO users (username, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, username, password_hash, role
    `, u.Username, u.PasswordHash, u.Role).Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
		&created.Role,
	)
	if database.IsUniqueViolation(err) {
		return nil, model.ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
        SELECT id, username, password_hash, role
        FROM users
        WHERE LOWER(username) = LOWER($1)
    `, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return &u, nil
}
