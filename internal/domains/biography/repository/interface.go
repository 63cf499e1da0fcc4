package repository

import (
	"context"

	"library-api/internal/domains/biography/model"
)

// RepositoryInterface is the biography store, keyed by author id.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Biography, error)

	// GetByAuthorID returns model.ErrBiographyNotFound when missing
	GetByAuthorID(ctx context.Context, authorID int64) (*model.Biography, error)

	// Create returns model.ErrBiographyExists when the author already has one,
	// and an InvalidForeignKey error when the author is missing.
	Create(ctx context.Context, b *model.Biography) (*model.Biography, error)

	Replace(ctx context.Context, b *model.Biography) (bool, error)
	Delete(ctx context.Context, authorID int64) (bool, error)
	ExistsByAuthorID(ctx context.Context, authorID int64) (bool, error)
}
