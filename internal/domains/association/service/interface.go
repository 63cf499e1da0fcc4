package service

import (
	"context"

	authorModel "library-api/internal/domains/author/model"
	eventModel "library-api/internal/domains/event/model"
)

// ServiceInterface manages the author-event links.
type ServiceInterface interface {
	// AddAuthor links an author to an event: event not found when the event is missing,
	// InvalidForeignKey when the author is missing, Conflict when already linked.
	AddAuthor(ctx context.Context, eventID, authorID int64) error

	// RemoveAuthor returns not found when the pair is not linked
	RemoveAuthor(ctx context.Context, eventID, authorID int64) error

	// ListMembers never fails for an unknown event; it is simply empty
	ListMembers(ctx context.Context, eventID int64) ([]authorModel.Author, error)

	// ListAuthors is ListMembers with an existence check on the event
	ListAuthors(ctx context.Context, eventID int64) ([]authorModel.Author, error)

	// ListEvents returns the events of an author, or author not found
	ListEvents(ctx context.Context, authorID int64) ([]eventModel.Event, error)
}
