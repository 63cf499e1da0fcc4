package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
)

var (
	ErrAssociationExists   = apperror.New(apperror.KindConflict, "author is already linked to this event")
	ErrAssociationNotFound = apperror.New(apperror.KindNotFound, "author is not linked to this event")
)

// AuthorEvent links an author to an event. The pair is unique.
type AuthorEvent struct {
	AuthorID int64 `json:"author_id" db:"author_id"`
	EventID  int64 `json:"event_id" db:"event_id"`
}

// AddAuthorRequest - POST /Events/:id/Authors
type AddAuthorRequest struct {
	AuthorID int64 `json:"author_id"`
}

func (r AddAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
	)
}
