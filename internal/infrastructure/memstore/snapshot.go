package memstore

import (
	"encoding/json"
	"fmt"

	associationModel "library-api/internal/domains/association/model"
	authorModel "library-api/internal/domains/author/model"
	biographyModel "library-api/internal/domains/biography/model"
	bookModel "library-api/internal/domains/book/model"
	eventModel "library-api/internal/domains/event/model"
	userModel "library-api/internal/domains/user/model"
)

// Bucket names used as persistence keys.
const (
	BucketAuthors     = "authors"
	BucketBooks       = "books"
	BucketBiographies = "biographies"
	BucketEvents      = "events"
	BucketUsers       = "users"
	BucketLinks       = "author_events"
	BucketSequences   = "sequences"
)

// storedUser keeps the password hash, which the API model hides from JSON.
type storedUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// Snapshot is the serialisable form of Data.
type Snapshot struct {
	Authors     []authorModel.Author
	Books       []bookModel.Book
	Biographies []biographyModel.Biography
	Events      []eventModel.Event
	Users       []storedUser
	Links       []associationModel.AuthorEvent

	// Sequences holds the id high-water mark per bucket.
	Sequences map[string]int64
}

func takeSnapshot(d *Data) *Snapshot {
	s := &Snapshot{
		Authors:     d.Authors.List(),
		Books:       d.Books.List(),
		Biographies: d.Biographies.List(),
		Events:      d.Events.List(),
		Links:       append([]associationModel.AuthorEvent(nil), d.Links.pairs...),
		Sequences: map[string]int64{
			BucketAuthors: d.Authors.Sequence(),
			BucketBooks:   d.Books.Sequence(),
			BucketEvents:  d.Events.Sequence(),
			BucketUsers:   d.Users.Sequence(),
		},
	}
	for _, u := range d.Users.List() {
		s.Users = append(s.Users, storedUser(u))
	}
	return s
}

func (s *Snapshot) restoreInto(d *Data) {
	for _, a := range s.Authors {
		d.Authors.Put(a.ID, a)
	}
	for _, b := range s.Books {
		d.Books.Put(b.ID, b)
	}
	for _, b := range s.Biographies {
		d.Biographies.Put(b.AuthorID, b)
	}
	for _, e := range s.Events {
		d.Events.Put(e.ID, e)
	}
	for _, u := range s.Users {
		d.Users.Put(u.ID, userModel.User(u))
	}
	for _, l := range s.Links {
		d.Links.Add(l.AuthorID, l.EventID)
	}
	d.Authors.Advance(s.Sequences[BucketAuthors])
	d.Books.Advance(s.Sequences[BucketBooks])
	d.Events.Advance(s.Sequences[BucketEvents])
	d.Users.Advance(s.Sequences[BucketUsers])
}

// Buckets encodes every table as one JSON document keyed by bucket name.
func (s *Snapshot) Buckets() (map[string][]byte, error) {
	parts := map[string]any{
		BucketAuthors:     s.Authors,
		BucketBooks:       s.Books,
		BucketBiographies: s.Biographies,
		BucketEvents:      s.Events,
		BucketUsers:       s.Users,
		BucketLinks:       s.Links,
		BucketSequences:   s.Sequences,
	}
	out := make(map[string][]byte, len(parts))
	for name, rows := range parts {
		raw, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("encode bucket %s: %w", name, err)
		}
		out[name] = raw
	}
	return out, nil
}

// SnapshotFromBuckets is the inverse of Buckets. Missing buckets decode as empty.
func SnapshotFromBuckets(buckets map[string][]byte) (*Snapshot, error) {
	s := &Snapshot{}
	targets := map[string]any{
		BucketAuthors:     &s.Authors,
		BucketBooks:       &s.Books,
		BucketBiographies: &s.Biographies,
		BucketEvents:      &s.Events,
		BucketUsers:       &s.Users,
		BucketLinks:       &s.Links,
		BucketSequences:   &s.Sequences,
	}
	for name, dst := range targets {
		raw, ok := buckets[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("decode bucket %s: %w", name, err)
		}
	}
	return s, nil
}
