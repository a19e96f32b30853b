package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// memRedis implements the subset of redis.Cmdable used by the store.
type memRedis struct {
	redis.Cmdable
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = value.([]byte)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestArticleCacheStore_SetGetInvalidate(t *testing.T) {
	rdb := newMemRedis()
	c := NewArticleCacheStore(rdb)
	ctx := context.Background()

	_, found, err := c.GetArticleBySlug(ctx, "go-1")
	require.NoError(t, err)
	assert.False(t, found)

	article := &entity.Article{ID: "a1", Slug: "go-1", Title: "Go", Tags: []string{"go"}, FavoritesCount: 3}
	require.NoError(t, c.SetArticleBySlug(ctx, "go-1", article))
	assert.Equal(t, 60*time.Minute, rdb.ttls["article:slug:go-1"])

	got, found, err := c.GetArticleBySlug(ctx, "go-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, article.Title, got.Title)
	assert.Equal(t, int64(3), got.FavoritesCount)

	require.NoError(t, c.InvalidateArticleBySlug(ctx, "go-1"))
	_, found, err = c.GetArticleBySlug(ctx, "go-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestArticleCacheStore_CorruptEntryIsMiss(t *testing.T) {
	rdb := newMemRedis()
	rdb.data["article:slug:bad"] = []byte("{not json")
	c := NewArticleCacheStore(rdb)

	_, found, err := c.GetArticleBySlug(context.Background(), "bad")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestArticleCacheStore_BackendError(t *testing.T) {
	rdb := newMemRedis()
	rdb.getErr = errors.New("connection refused")
	c := NewArticleCacheStore(rdb)

	_, found, err := c.GetArticleBySlug(context.Background(), "any")
	assert.Error(t, err)
	assert.False(t, found)
}
