package service

import (
	"context"

	"library-api/internal/domains/biography/model"
)

// ServiceInterface defines the biography use cases, addressed by author id.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Biography, error)
	GetByAuthorID(ctx context.Context, authorID int64) (*model.Biography, error)

	// Create fails with InvalidForeignKey for an unknown author and Conflict when one exists
	Create(ctx context.Context, req model.CreateBiographyRequest) (*model.Biography, error)

	Replace(ctx context.Context, authorID int64, req model.ReplaceBiographyRequest) error
	Patch(ctx context.Context, authorID int64, req model.PatchBiographyRequest) error
	Delete(ctx context.Context, authorID int64) error
}
