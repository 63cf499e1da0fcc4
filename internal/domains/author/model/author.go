package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
	"library-api/internal/shared/types"
	"library-api/pkg/patch"
)

const NameMaxLength = 100

var ErrAuthorNotFound = apperror.New(apperror.KindNotFound, "author not found")

type Author struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	BirthDate types.Date `json:"birth_date" db:"birth_date"`
}

// ========================================
// REQUEST DTOs
// ========================================

// CreateAuthorRequest - POST /Authors
type CreateAuthorRequest struct {
	Name      string     `json:"name"`
	BirthDate types.Date `json:"birth_date"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, NameMaxLength)),
		validation.Field(&r.BirthDate, types.RequiredDate),
	)
}

func (r CreateAuthorRequest) ToAuthor() Author {
	return Author{Name: r.Name, BirthDate: r.BirthDate}
}

// ReplaceAuthorRequest - PUT /Authors/:id, every field mandatory
type ReplaceAuthorRequest struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BirthDate types.Date `json:"birth_date"`
}

func (r ReplaceAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, NameMaxLength)),
		validation.Field(&r.BirthDate, types.RequiredDate),
	)
}

func (r ReplaceAuthorRequest) ToAuthor() Author {
	return Author{ID: r.ID, Name: r.Name, BirthDate: r.BirthDate}
}

// PatchAuthorRequest - PATCH /Authors/:id, only provided fields are applied
type PatchAuthorRequest struct {
	Name      patch.Field[string]     `json:"name"`
	BirthDate patch.Field[types.Date] `json:"birth_date"`
}

func (r PatchAuthorRequest) Validate() error {
	return validation.Errors{
		"name": validation.Validate(r.Name.Value,
			validation.When(r.Name.Set, validation.Required, validation.RuneLength(1, NameMaxLength))),
		"birth_date": validation.Validate(r.BirthDate.Value,
			validation.When(r.BirthDate.Set, types.RequiredDate)),
	}.Filter()
}

// ApplyTo returns a copy of a with every provided field overwritten.
func (r PatchAuthorRequest) ApplyTo(a Author) Author {
	r.Name.Apply(&a.Name)
	r.BirthDate.Apply(&a.BirthDate)
	return a
}
