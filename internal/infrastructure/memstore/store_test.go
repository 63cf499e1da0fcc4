package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "library-api/internal/domains/author/model"
	biographyModel "library-api/internal/domains/biography/model"
	bookModel "library-api/internal/domains/book/model"
	eventModel "library-api/internal/domains/event/model"
	userModel "library-api/internal/domains/user/model"
)

type fakePersister struct {
	saved   *Snapshot
	loaded  *Snapshot
	saveErr error
}

func (f *fakePersister) Load(context.Context) (*Snapshot, error) { return f.loaded, nil }

func (f *fakePersister) Save(_ context.Context, s *Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = s
	return nil
}

func TestTable_NextIDNeverReusesDeletedIDs(t *testing.T) {
	tbl := newTable[authorModel.Author]()
	assert.Equal(t, int64(1), tbl.NextID())

	tbl.Put(1, authorModel.Author{ID: 1})
	tbl.Put(5, authorModel.Author{ID: 5})
	assert.Equal(t, int64(6), tbl.NextID())

	tbl.Delete(5)
	assert.Equal(t, int64(6), tbl.NextID())

	tbl.Advance(3)
	assert.Equal(t, int64(6), tbl.NextID())
	tbl.Advance(10)
	assert.Equal(t, int64(11), tbl.NextID())
}

func TestTable_ListIsOrdered(t *testing.T) {
	tbl := newTable[bookModel.Book]()
	for _, id := range []int64{3, 1, 2} {
		tbl.Put(id, bookModel.Book{ID: id})
	}
	var ids []int64
	for _, b := range tbl.List() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func seed(d *Data) {
	d.Authors.Put(1, authorModel.Author{ID: 1, Name: "A"})
	d.Authors.Put(2, authorModel.Author{ID: 2, Name: "B"})
	d.Books.Put(1, bookModel.Book{ID: 1, AuthorID: 1})
	d.Books.Put(2, bookModel.Book{ID: 2, AuthorID: 2})
	d.Biographies.Put(1, biographyModel.Biography{AuthorID: 1})
	d.Events.Put(1, eventModel.Event{ID: 1})
	d.Links.Add(1, 1)
	d.Links.Add(2, 1)
}

func TestRemoveAuthorCascades(t *testing.T) {
	d := newData()
	seed(d)

	require.True(t, d.RemoveAuthor(1))
	assert.False(t, d.Books.Has(1))
	assert.True(t, d.Books.Has(2))
	assert.False(t, d.Biographies.Has(1))
	assert.False(t, d.Links.Has(1, 1))
	assert.True(t, d.Links.Has(2, 1))

	assert.False(t, d.RemoveAuthor(1))
}

func TestRemoveEventCascades(t *testing.T) {
	d := newData()
	seed(d)

	require.True(t, d.RemoveEvent(1))
	assert.Zero(t, d.Links.Len())
	assert.Equal(t, 2, d.Authors.Len())
}

func TestLinks_AddRemove(t *testing.T) {
	l := &Links{}
	assert.True(t, l.Add(1, 2))
	assert.False(t, l.Add(1, 2))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Remove(2, 1))
	assert.True(t, l.Remove(1, 2))
	assert.Zero(t, l.Len())
}

func TestWrite_PersistsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	p := &fakePersister{}
	s, err := Open(ctx, p)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, func(d *Data) error {
		d.Users.Put(1, userModel.User{ID: 1, Username: "ada", PasswordHash: "hash", Role: "User"})
		return nil
	}))
	require.NotNil(t, p.saved)
	require.Len(t, p.saved.Users, 1)
	assert.Equal(t, "hash", p.saved.Users[0].PasswordHash)

	p.saveErr = errors.New("disk full")
	err = s.Write(ctx, func(d *Data) error {
		d.Authors.Put(1, authorModel.Author{ID: 1})
		return nil
	})
	require.Error(t, err)

	_ = s.Read(func(d *Data) error {
		assert.Zero(t, d.Authors.Len(), "failed save must roll back")
		return nil
	})
}

func TestSnapshotBucketsRoundTrip(t *testing.T) {
	d := newData()
	seed(d)
	d.Users.Put(1, userModel.User{ID: 1, Username: "ada", PasswordHash: "hash"})

	buckets, err := takeSnapshot(d).Buckets()
	require.NoError(t, err)

	snap, err := SnapshotFromBuckets(buckets)
	require.NoError(t, err)

	restored, err := Open(context.Background(), &fakePersister{loaded: snap})
	require.NoError(t, err)
	_ = restored.Read(func(r *Data) error {
		assert.Equal(t, d.Authors.List(), r.Authors.List())
		assert.Equal(t, d.Books.List(), r.Books.List())
		assert.True(t, r.Links.Has(2, 1))
		u, ok := r.Users.Get(1)
		require.True(t, ok)
		assert.Equal(t, "hash", u.PasswordHash)
		return nil
	})
}
