package repository

import (
	"context"

	"library-api/internal/domains/event/model"
)

type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Event, error)

	// GetByID returns model.ErrEventNotFound when missing
	GetByID(ctx context.Context, id int64) (*model.Event, error)

	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	Replace(ctx context.Context, e *model.Event) (bool, error)

	// Delete also removes the event's author links
	Delete(ctx context.Context, id int64) (bool, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
