package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
	"library-api/pkg/patch"
)

const (
	TitleMaxLength     = 100
	MinPublicationYear = 1000
)

var ErrBookNotFound = apperror.New(apperror.KindNotFound, "book not found")

type Book struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	PublicationYear int    `json:"publication_year" db:"publication_year"`
	AuthorID        int64  `json:"author_id" db:"author_id"`
}

// yearRule accepts 1000..current year, evaluated per call so it never goes stale.
func yearRule() validation.Rule {
	return validation.Max(time.Now().Year())
}

// CreateBookRequest - POST /Books
type CreateBookRequest struct {
	Title           string `json:"title"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        int64  `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, TitleMaxLength)),
		validation.Field(&r.PublicationYear, validation.Required, validation.Min(MinPublicationYear), yearRule()),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
	)
}

func (r CreateBookRequest) ToBook() Book {
	return Book{Title: r.Title, PublicationYear: r.PublicationYear, AuthorID: r.AuthorID}
}

// ReplaceBookRequest - PUT /Books/:id
type ReplaceBookRequest struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        int64  `json:"author_id"`
}

func (r ReplaceBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, TitleMaxLength)),
		validation.Field(&r.PublicationYear, validation.Required, validation.Min(MinPublicationYear), yearRule()),
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
	)
}

func (r ReplaceBookRequest) ToBook() Book {
	return Book{ID: r.ID, Title: r.Title, PublicationYear: r.PublicationYear, AuthorID: r.AuthorID}
}

// PatchBookRequest - PATCH /Books/:id
type PatchBookRequest struct {
	Title           patch.Field[string] `json:"title"`
	PublicationYear patch.Field[int]    `json:"publication_year"`
	AuthorID        patch.Field[int64]  `json:"author_id"`
}

func (r PatchBookRequest) Validate() error {
	return validation.Errors{
		"title": validation.Validate(r.Title.Value,
			validation.When(r.Title.Set, validation.Required, validation.RuneLength(1, TitleMaxLength))),
		"publication_year": validation.Validate(r.PublicationYear.Value,
			validation.When(r.PublicationYear.Set, validation.Required, validation.Min(MinPublicationYear), yearRule())),
		"author_id": validation.Validate(r.AuthorID.Value,
			validation.When(r.AuthorID.Set, validation.Required, validation.Min(int64(1)))),
	}.Filter()
}

// ApplyTo returns a copy of b with every provided field overwritten.
// A provided author_id must already have been checked for existence.
func (r PatchBookRequest) ApplyTo(b Book) Book {
	r.Title.Apply(&b.Title)
	r.PublicationYear.Apply(&b.PublicationYear)
	r.AuthorID.Apply(&b.AuthorID)
	return b
}
