package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/apperror"
	"library-api/internal/shared/types"
	"library-api/pkg/patch"
)

const (
	NameMaxLength     = 100
	LocationMaxLength = 100
)

var ErrEventNotFound = apperror.New(apperror.KindNotFound, "event not found")

type Event struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Date     time.Time `json:"date" db:"date"`
	Location string    `json:"location" db:"location"`
}

// CreateEventRequest - POST /Events
type CreateEventRequest struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, NameMaxLength)),
		validation.Field(&r.Date, types.RequiredDate),
		validation.Field(&r.Location, validation.Required, validation.RuneLength(1, LocationMaxLength)),
	)
}

func (r CreateEventRequest) ToEvent() Event {
	return Event{Name: r.Name, Date: r.Date.UTC(), Location: r.Location}
}

// ReplaceEventRequest - PUT /Events/:id
type ReplaceEventRequest struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

func (r ReplaceEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, NameMaxLength)),
		validation.Field(&r.Date, types.RequiredDate),
		validation.Field(&r.Location, validation.Required, validation.RuneLength(1, LocationMaxLength)),
	)
}

func (r ReplaceEventRequest) ToEvent() Event {
	return Event{ID: r.ID, Name: r.Name, Date: r.Date.UTC(), Location: r.Location}
}

// PatchEventRequest - PATCH /Events/:id
type PatchEventRequest struct {
	Name     patch.Field[string]    `json:"name"`
	Date     patch.Field[time.Time] `json:"date"`
	Location patch.Field[string]    `json:"location"`
}

func (r PatchEventRequest) Validate() error {
	return validation.Errors{
		"name": validation.Validate(r.Name.Value,
			validation.When(r.Name.Set, validation.Required, validation.RuneLength(1, NameMaxLength))),
		"date": validation.Validate(r.Date.Value,
			validation.When(r.Date.Set, types.RequiredDate)),
		"location": validation.Validate(r.Location.Value,
			validation.When(r.Location.Set, validation.Required, validation.RuneLength(1, LocationMaxLength))),
	}.Filter()
}

func (r PatchEventRequest) ApplyTo(e Event) Event {
	r.Name.Apply(&e.Name)
	if d, ok := r.Date.Get(); ok {
		e.Date = d.UTC()
	}
	r.Location.Apply(&e.Location)
	return e
}
