package repository

import (
	"context"

	"library-api/internal/domains/association/model"
	authorModel "library-api/internal/domains/author/model"
	eventModel "library-api/internal/domains/event/model"
	"library-api/internal/infrastructure/memstore"
	"library-api/internal/shared/apperror"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

func (r *memoryRepository) Add(ctx context.Context, eventID, authorID int64) (bool, error) {
	added := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if !d.Events.Has(eventID) {
			return apperror.InvalidForeignKey("event with id %d does not exist", eventID)
		}
		if !d.Authors.Has(authorID) {
			return apperror.InvalidForeignKey("author with id %d does not exist", authorID)
		}
		added = d.Links.Add(authorID, eventID)
		return nil
	})
	return added, err
}

func (r *memoryRepository) Remove(ctx context.Context, eventID, authorID int64) (bool, error) {
	removed := false
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		removed = d.Links.Remove(authorID, eventID)
		return nil
	})
	return removed, err
}

func (r *memoryRepository) Exists(_ context.Context, eventID, authorID int64) (bool, error) {
	var ok bool
	err := r.store.Read(func(d *memstore.Data) error {
		ok = d.Links.Has(authorID, eventID)
		return nil
	})
	return ok, err
}

func (r *memoryRepository) ListAuthorsByEvent(_ context.Context, eventID int64) ([]authorModel.Author, error) {
	authors := []authorModel.Author{}
	err := r.store.Read(func(d *memstore.Data) error {
		for _, link := range d.Links.Filter(func(p model.AuthorEvent) bool { return p.EventID == eventID }) {
			if a, ok := d.Authors.Get(link.AuthorID); ok {
				authors = append(authors, a)
			}
		}
		return nil
	})
	return authors, err
}

func (r *memoryRepository) ListEventsByAuthor(_ context.Context, authorID int64) ([]eventModel.Event, error) {
	events := []eventModel.Event{}
	err := r.store.Read(func(d *memstore.Data) error {
		for _, link := range d.Links.Filter(func(p model.AuthorEvent) bool { return p.AuthorID == authorID }) {
			if e, ok := d.Events.Get(link.EventID); ok {
				events = append(events, e)
			}
		}
		return nil
	})
	return events, err
}
