// Package existence confirms that referenced entities exist before a dependent write.
package existence

import (
	"context"
	"fmt"

	"library-api/internal/shared/apperror"
)

// Kind names an entity that can be the target of a foreign key.
type Kind string

const (
	KindAuthor Kind = "author"
	KindEvent  Kind = "event"
)

// Checker is implemented by every repository that can answer an existence query.
type Checker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Validator dispatches existence checks to the repository registered for each kind.
type Validator struct {
	checkers map[Kind]Checker
}

func NewValidator() *Validator {
	return &Validator{checkers: make(map[Kind]Checker)}
}

// Register binds a checker to kind, replacing any previous one.
func (v *Validator) Register(kind Kind, c Checker) *Validator {
	v.checkers[kind] = c
	return v
}

// Exists reports whether an entity of kind with id exists.
// Non-positive ids never exist and do not reach the store.
func (v *Validator) Exists(ctx context.Context, kind Kind, id int64) (bool, error) {
	c, ok := v.checkers[kind]
	if !ok {
		return false, fmt.Errorf("existence: no checker registered for %q", kind)
	}
	if id <= 0 {
		return false, nil
	}
	exists, err := c.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check %s %d exists: %w", kind, id, err)
	}
	return exists, nil
}

// Require returns an InvalidForeignKey error when the referenced entity is missing.
func (v *Validator) Require(ctx context.Context, kind Kind, id int64) error {
	exists, err := v.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.InvalidForeignKey("%s with id %d does not exist", kind, id)
	}
	return nil
}
