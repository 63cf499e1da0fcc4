package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
	"library-api/pkg/patch"
)

const ContentMinLength = 50

var (
	ErrBiographyNotFound = apperror.New(apperror.KindNotFound, "biography not found")
	ErrBiographyExists   = apperror.New(apperror.KindConflict, "author already has a biography")
)

// Biography is keyed by its author; there is at most one per author.
type Biography struct {
	AuthorID int64  `json:"author_id" db:"author_id"`
	Content  string `json:"content" db:"content"`
}

// CreateBiographyRequest - POST /Biographies
type CreateBiographyRequest struct {
	AuthorID int64  `json:"author_id"`
	Content  string `json:"content"`
}

func (r CreateBiographyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(ContentMinLength, 0)),
	)
}

func (r CreateBiographyRequest) ToBiography() Biography {
	return Biography{AuthorID: r.AuthorID, Content: r.Content}
}

// ReplaceBiographyRequest - PUT /Biographies/:authorId. The body repeats the key.
type ReplaceBiographyRequest struct {
	AuthorID int64  `json:"author_id"`
	Content  string `json:"content"`
}

func (r ReplaceBiographyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Content, validation.Required, validation.RuneLength(ContentMinLength, 0)),
	)
}

func (r ReplaceBiographyRequest) ToBiography() Biography {
	return Biography{AuthorID: r.AuthorID, Content: r.Content}
}

// PatchBiographyRequest - PATCH /Biographies/:authorId. The key cannot be changed.
type PatchBiographyRequest struct {
	Content patch.Field[string] `json:"content"`
}

func (r PatchBiographyRequest) Validate() error {
	return validation.Errors{
		"content": validation.Validate(r.Content.Value,
			validation.When(r.Content.Set, validation.Required, validation.RuneLength(ContentMinLength, 0))),
	}.Filter()
}

func (r PatchBiographyRequest) ApplyTo(b Biography) Biography {
	r.Content.Apply(&b.Content)
	return b
}
