package repository

import (
	"context"
	"strings"

	"library-api/internal/domains/user/model"
	"library-api/internal/infrastructure/memstore"
)

type memoryRepository struct {
	store *memstore.Store
}

func NewMemoryRepository(store *memstore.Store) RepositoryInterface {
	return &memoryRepository{store: store}
}

// Usernames compare case-insensitively, matching the unique index semantics of the SQL store.
func findByUsername(d *memstore.Data, username string) (model.User, bool) {
	for _, u := range d.Users.Filter(func(u model.User) bool { return strings.EqualFold(u.Username, username) }) {
		return u, true
	}
	return model.User{}, false
}

func (r *memoryRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	created := *u
	err := r.store.Write(ctx, func(d *memstore.Data) error {
		if _, taken := findByUsername(d, created.Username); taken {
			return model.ErrUsernameTaken
		}
		created.ID = d.Users.NextID()
		d.Users.Put(created.ID, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memoryRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	var u model.User
	var ok bool
	_ = r.store.Read(func(d *memstore.Data) error {
		u, ok = findByUsername(d, username)
		return nil
	})
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}
