package service

import (
	"context"

	"library-api/internal/domains/event/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	Replace(ctx context.Context, id int64, req model.ReplaceEventRequest) error
	Patch(ctx context.Context, id int64, req model.PatchEventRequest) error

	// Delete also unlinks every author from the event
	Delete(ctx context.Context, id int64) error
}
