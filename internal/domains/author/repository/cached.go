package repository

import (
	"context"
	"time"

	"library-api/internal/domains/author/model"
	"library-api/pkg/cache"
)

// cachedRepository reads single authors through the record cache.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository wraps next; list and existence queries go straight to next.
func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.AuthorKey(id), r.ttl, func(ctx context.Context) (*model.Author, error) {
		return r.RepositoryInterface.GetByID(ctx, id)
	})
}

func (r *cachedRepository) Replace(ctx context.Context, a *model.Author) (bool, error) {
	ok, err := r.RepositoryInterface.Replace(ctx, a)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.AuthorKey(a.ID))
	}
	return ok, err
}

// Delete drops the author, its biography and every cached book, since the cascade may have removed any of them.
func (r *cachedRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := r.RepositoryInterface.Delete(ctx, id)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.AuthorKey(id), cache.BiographyKey(id))
		cache.InvalidatePattern(ctx, r.cache, cache.BookPattern)
	}
	return ok, err
}
