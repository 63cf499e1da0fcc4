package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/pkg/cache"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Connect(context.Background()))
	return NewRedisCache(client.Client, "library:"), mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got record
	found, err := c.Get(ctx, "author:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "author:1", record{ID: 1, Name: "X"}, time.Minute))
	assert.True(t, mr.Exists("library:author:1"))

	found, err = c.Get(ctx, "author:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{ID: 1, Name: "X"}, got)

	require.NoError(t, c.Delete(ctx, "author:1"))
	assert.False(t, mr.Exists("library:author:1"))
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "event:1", record{ID: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got record
	found, err := c.Get(ctx, "event:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_DeletePattern(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	for i := int64(1); i <= 350; i++ {
		require.NoError(t, c.Set(ctx, "book:"+strconv.FormatInt(i, 10), record{ID: i}, time.Minute))
	}
	require.NoError(t, c.Set(ctx, "author:1", record{ID: 1}, time.Minute))

	require.NoError(t, c.DeletePattern(ctx, "book:*"))

	assert.Len(t, mr.Keys(), 1)
	assert.True(t, mr.Exists("library:author:1"))
}

func TestGetOrLoad_ReadThrough(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (record, error) {
		calls++
		return record{ID: 9, Name: "loaded"}, nil
	}

	first, err := cache.GetOrLoad(ctx, c, "book:9", time.Minute, load)
	require.NoError(t, err)
	second, err := cache.GetOrLoad(ctx, c, "book:9", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}
