package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// RepositoryInterface is the book store. Every stored book references an existing author.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Book, error)

	// ListByAuthor returns an empty slice for an unknown author
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)

	// GetByID returns model.ErrBookNotFound when missing
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// Create returns an InvalidForeignKey error if the author vanished since validation
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	Replace(ctx context.Context, b *model.Book) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
