package repository

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/infrastructure/memstore"
	"library-api/internal/shared/apperror"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

func errMissingAuthor(id int64) error {
	return apperror.InvalidForeignKey("author with id %d does not exist", id)
}

func (r *memoryRepository) List(_ context.Context) ([]model.Book, error) {
	var out []model.Book
	err := r.store.Read(func(d *memstore.Data) error {
		out = d.Books.List()
		return nil
	})
	return out, err
}

func (r *memoryRepository) ListByAuthor(_ context.Context, authorID int64) ([]model.Book, error) {
	var out []model.Book
	err := r.store.Read(func(d *memstore.Data) error {
		out = d.Books.Filter(func(b model.Book) bool { return b.AuthorID == authorID })
		return nil
	})
	return out, err
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Book, error) {
	var b model.Book
	var ok bool
	_ = r.store.Read(func(d *memstore.Data) error {
		b, ok = d.Books.Get(id)
		return nil
	})
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (r *memoryRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Authors.Has(created.AuthorID) {
			return errMissingAuthor(created.AuthorID)
		}
		created.ID = d.Books.NextID()
		d.Books.Put(created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memoryRepository) Replace(ctx context.Context, b *model.Book) (bool, error) {
	found := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Books.Has(b.ID) {
			return nil
		}
		if !d.Authors.Has(b.AuthorID) {
			return errMissingAuthor(b.AuthorID)
		}
		d.Books.Put(b.ID, *b)
		found = true
		return nil
	})
	return found, err
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		removed = d.Books.Delete(id)
		return nil
	})
	return removed, err
}

func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.store.Read(func(d *memstore.Data) error {
		ok = d.Books.Has(id)
		return nil
	})
	return ok, err
}
