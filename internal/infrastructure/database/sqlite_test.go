package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "library-api/internal/domains/author/model"
	"library-api/internal/infrastructure/memstore"
)

func TestSQLiteSnapshotter_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.db")

	snap, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	store, err := memstore.Open(ctx, snap)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, func(d *memstore.Data) error {
		d.Authors.Put(1, authorModel.Author{ID: 1, Name: "X"})
		d.Authors.Put(2, authorModel.Author{ID: 2, Name: "Y"})
		d.Authors.Put(3, authorModel.Author{ID: 3, Name: "Z"})
		return nil
	}))
	require.NoError(t, store.Write(ctx, func(d *memstore.Data) error {
		d.Authors.Delete(3)
		return nil
	}))
	require.NoError(t, snap.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	restored, err := memstore.Open(ctx, reopened)
	require.NoError(t, err)
	_ = restored.Read(func(d *memstore.Data) error {
		assert.Equal(t, 2, d.Authors.Len())
		a, ok := d.Authors.Get(2)
		require.True(t, ok)
		assert.Equal(t, "Y", a.Name)
		assert.Equal(t, int64(4), d.Authors.NextID())
		return nil
	})
}

func TestSQLiteSnapshotter_EmptyLoad(t *testing.T) {
	ctx := context.Background()
	snap, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer snap.Close()

	loaded, err := snap.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, snap.HealthCheck(ctx))
}
