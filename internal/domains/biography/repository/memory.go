package repository

import (
	"context"

	"library-api/internal/domains/biography/model"
	"library-api/internal/infrastructure/memstore"
	"library-api/internal/shared/apperror"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

func (r *memoryRepository) List(_ context.Context) ([]model.Biography, error) {
	var out []model.Biography
	err := r.store.Read(func(d *memstore.Data) error {
		out = d.Biographies.List()
		return nil
	})
	return out, err
}

func (r *memoryRepository) GetByAuthorID(_ context.Context, authorID int64) (*model.Biography, error) {
	var b model.Biography
	var ok bool
	_ = r.store.Read(func(d *memstore.Data) error {
		b, ok = d.Biographies.Get(authorID)
		return nil
	})
	if !ok {
		return nil, model.ErrBiographyNotFound
	}
	return &b, nil
}

func (r *memoryRepository) Create(ctx context.Context, b *model.Biography) (*model.Biography, error) {
	created := *b
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Authors.Has(created.AuthorID) {
			return apperror.InvalidForeignKey("author with id %d does not exist", created.AuthorID)
		}
		if d.Biographies.Has(created.AuthorID) {
			return model.ErrBiographyExists
		}
		d.Biographies.Put(created.AuthorID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memoryRepository) Replace(ctx context.Context, b *model.Biography) (bool, error) {
	found := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Biographies.Has(b.AuthorID) {
			return nil
		}
		d.Biographies.Put(b.AuthorID, *b)
		found = true
		return nil
	})
	return found, err
}

func (r *memoryRepository) Delete(ctx context.Context, authorID int64) (bool, error) {
	removed := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		removed = d.Biographies.Delete(authorID)
		return nil
	})
	return removed, err
}

func (r *memoryRepository) ExistsByAuthorID(_ context.Context, authorID int64) (bool, error) {
	var ok bool
	err := r.store.Read(func(d *memstore.Data) error {
		ok = d.Biographies.Has(authorID)
		return nil
	})
	return ok, err
}
