package repository

import (
	"context"
	"time"

	"library-api/internal/domains/event/model"
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

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.EventKey(id), r.ttl, func(ctx context.Context) (*model.Event, error) {
		return r.RepositoryInterface.GetByID(ctx, id)
	})
}

func (r *cachedRepository) Replace(ctx context.Context, e *model.Event) (bool, error) {
	ok, err := r.RepositoryInterface.Replace(ctx, e)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.EventKey(e.ID))
	}
	return ok, err
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := r.RepositoryInterface.Delete(ctx, id)
	if err == nil && ok {
		cache.Invalidate(ctx, r.cache, cache.EventKey(id))
	}
	return ok, err
}
