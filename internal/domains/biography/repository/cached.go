package repository

import (
	"context"
	"time"

	"library-api/internal/domains/biography/model"
	"library-api/pkg/cache"
)

type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) GetByAuthorID(ctx context.Context, authorID int64) (*model.Biography, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.BiographyKey(authorID), r.ttl, func(ctx context.Context) (*model.Biography, error) {
		return r.RepositoryInterface.GetByAuthorID(ctx, authorID)
	})
}

func (r *cachedRepository) Replace(ctx context.Context, b *model.Biography) (bool, error) {
	ok, err := r.RepositoryInterface.Replace(ctx, b)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.BiographyKey(b.AuthorID))
	}
	return ok, err
}

func (r *cachedRepository) Delete(ctx context.Context, authorID int64) (bool, error) {
	ok, err := r.RepositoryInterface.Delete(ctx, authorID)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.BiographyKey(authorID))
	}
	return ok, err
}
