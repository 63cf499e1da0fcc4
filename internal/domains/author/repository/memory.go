package repository

import (
	"context"

	"library-api/internal/domains/author/model"
	"library-api/internal/infrastructure/memstore"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

func (r *memoryRepository) List(_ context.Context) ([]model.Author, error) {
	var out []model.Author
	err := r.store.Read(func(d *memstore.Data) error {
		out = d.Authors.List()
		return nil
	})
	return out, err
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Author, error) {
	var a model.Author
	var ok bool
	_ = r.store.Read(func(d *memstore.Data) error {
		a, ok = d.Authors.Get(id)
		return nil
	})
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *memoryRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		created.ID = d.Authors.NextID()
		d.Authors.Put(created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memoryRepository) Replace(ctx context.Context, a *model.Author) (bool, error) {
	found := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Authors.Has(a.ID) {
			return nil
		}
		d.Authors.Put(a.ID, *a)
		found = true
		return nil
	})
	return found, err
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		removed = d.RemoveAuthor(id)
		return nil
	})
	return removed, err
}

func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.store.Read(func(d *memstore.Data) error {
		ok = d.Authors.Has(id)
		return nil
	})
	return ok, err
}
