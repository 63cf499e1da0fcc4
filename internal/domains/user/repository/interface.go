package repository

import (
	"context"

	"library-api/internal/domains/user/model"
)

type RepositoryInterface interface {
	// Create returns model.ErrUsernameTaken on a duplicate username
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// GetByUsername returns model.ErrUserNotFound when missing
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
