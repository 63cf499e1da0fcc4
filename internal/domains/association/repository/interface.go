package repository

import (
	"context"

	authorModel "library-api/internal/domains/author/model"
	eventModel "library-api/internal/domains/event/model"
)

// RepositoryInterface stores author-event links. Callers verify both sides exist.
type RepositoryInterface interface {
	// Add reports false when the pair is already linked
	Add(ctx context.Context, eventID, authorID int64) (bool, error)

	// Remove reports false when the pair is not linked
	Remove(ctx context.Context, eventID, authorID int64) (bool, error)

	Exists(ctx context.Context, eventID, authorID int64) (bool, error)

	// ListAuthorsByEvent is empty for an unknown event
	ListAuthorsByEvent(ctx context.Context, eventID int64) ([]authorModel.Author, error)

	// ListEventsByAuthor is empty for an unknown author
	ListEventsByAuthor(ctx context.Context, authorID int64) ([]eventModel.Event, error)
}
