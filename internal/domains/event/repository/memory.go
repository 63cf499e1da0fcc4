package repository

import (
	"context"

	"library-api/internal/domains/event/model"
	"library-api/internal/infrastructure/memstore"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

func (r *memoryRepository) List(_ context.Context) ([]model.Event, error) {
	var out []model.Event
	err := r.store.Read(func(d *memstore.Data) error {
		out = d.Events.List()
		return nil
	})
	return out, err
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Event, error) {
	var e model.Event
	var ok bool
	_ = r.store.Read(func(d *memstore.Data) error {
		e, ok = d.Events.Get(id)
		return nil
	})
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return &e, nil
}

func (r *memoryRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	created := *e
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		created.ID = d.Events.NextID()
		d.Events.Put(created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memoryRepository) Replace(ctx context.Context, e *model.Event) (bool, error) {
	found := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Events.Has(e.ID) {
			return nil
		}
		d.Events.Put(e.ID, *e)
		found = true
		return nil
	})
	return found, err
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		removed = d.RemoveEvent(id)
		return nil
	})
	return removed, err
}

func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.store.Read(func(d *memstore.Data) error {
		ok = d.Events.Has(id)
		return nil
	})
	return ok, err
}
