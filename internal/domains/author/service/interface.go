package service

import (
	"context"

	"library-api/internal/domains/author/model"
)

// ServiceInterface defines the author use cases.
// Every "missing" outcome is reported as model.ErrAuthorNotFound.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error)

	// Replace rejects a body id that differs from id before touching the store
	Replace(ctx context.Context, id int64, req model.ReplaceAuthorRequest) error

	// Patch overwrites only the fields present in req; an empty patch changes nothing
	Patch(ctx context.Context, id int64, req model.PatchAuthorRequest) error

	// Delete cascades to the author's books, biography and event links
	Delete(ctx context.Context, id int64) error
}
