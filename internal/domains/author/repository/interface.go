package repository

import (
	"context"

	"library-api/internal/domains/author/model"
)

// RepositoryInterface is the author store.
// Replace and Delete report false when no author has the given id.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when missing
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// Create ignores a.ID and returns the stored author with its assigned id
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	Replace(ctx context.Context, a *model.Author) (bool, error)

	// Delete also removes the author's books, biography and event links
	Delete(ctx context.Context, id int64) (bool, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
