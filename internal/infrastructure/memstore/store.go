// Package memstore is the process-wide in-memory backing for every entity kind.
// It is also the working set of the sqlite driver, which snapshots it after each write.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	associationModel "library-api/internal/domains/association/model"
	authorModel "library-api/internal/domains/author/model"
	biographyModel "library-api/internal/domains/biography/model"
	bookModel "library-api/internal/domains/book/model"
	eventModel "library-api/internal/domains/event/model"
	userModel "library-api/internal/domains/user/model"
)

// Data is the set of tables visible inside Read and Write callbacks.
type Data struct {
	Authors     *Table[authorModel.Author]
	Books       *Table[bookModel.Book]
	Biographies *Table[biographyModel.Biography] // keyed by author id
	Events      *Table[eventModel.Event]
	Users       *Table[userModel.User]
	Links       *Links
}

func newData() *Data {
	return &Data{
		Authors:     newTable[authorModel.Author](),
		Books:       newTable[bookModel.Book](),
		Biographies: newTable[biographyModel.Biography](),
		Events:      newTable[eventModel.Event](),
		Users:       newTable[userModel.User](),
		Links:       &Links{},
	}
}

func (d *Data) clone() *Data {
	return &Data{
		Authors:     d.Authors.clone(),
		Books:       d.Books.clone(),
		Biographies: d.Biographies.clone(),
		Events:      d.Events.clone(),
		Users:       d.Users.clone(),
		Links:       &Links{pairs: slices.Clone(d.Links.pairs)},
	}
}

// RemoveAuthor deletes the author together with its books, biography and event links.
func (d *Data) RemoveAuthor(id int64) bool {
	if !d.Authors.Delete(id) {
		return false
	}
	d.Books.DeleteWhere(func(b bookModel.Book) bool { return b.AuthorID == id })
	d.Biographies.Delete(id)
	d.Links.DeleteWhere(func(p associationModel.AuthorEvent) bool { return p.AuthorID == id })
	return true
}

// RemoveEvent deletes the event and its author links.
func (d *Data) RemoveEvent(id int64) bool {
	if !d.Events.Delete(id) {
		return false
	}
	d.Links.DeleteWhere(func(p associationModel.AuthorEvent) bool { return p.EventID == id })
	return true
}

// Persister saves and restores the whole data set. Implemented by the sqlite driver.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}

// Store serialises access to Data. Writers are exclusive, readers share.
type Store struct {
	mu        sync.RWMutex
	data      *Data
	persister Persister
}

func New() *Store {
	return &Store{data: newData()}
}

// Open builds a store whose contents are loaded from p and saved back after every write.
func Open(ctx context.Context, p Persister) (*Store, error) {
	snap, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	s := &Store{data: newData(), persister: p}
	if snap != nil {
		snap.restoreInto(s.data)
	}
	log.Info().
		Int("authors", s.data.Authors.Len()).
		Int("books", s.data.Books.Len()).
		Int("events", s.data.Events.Len()).
		Msg("Memory store restored from snapshot")
	return s, nil
}

func (s *Store) Read(fn func(d *Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Write runs fn under the write lock. When a persister is attached the new state is
// saved before returning; if saving fails the in-memory state is rolled back.
func (s *Store) Write(ctx context.Context, fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister == nil {
		return fn(s.data)
	}

	before := s.data.clone()
	if err := fn(s.data); err != nil {
		s.data = before
		return err
	}
	if err := s.persister.Save(ctx, takeSnapshot(s.data)); err != nil {
		s.data = before
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
