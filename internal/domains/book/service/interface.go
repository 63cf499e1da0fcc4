package service

import (
	"context"

	"library-api/internal/domains/book/model"
)

// ServiceInterface defines the book use cases. Every write that carries an author id
// verifies the author first and fails with an InvalidForeignKey error otherwise.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// ListByAuthor returns author not found when the author does not exist
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)

	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	Replace(ctx context.Context, id int64, req model.ReplaceBookRequest) error
	Patch(ctx context.Context, id int64, req model.PatchBookRequest) error
	Delete(ctx context.Context, id int64) error
}
