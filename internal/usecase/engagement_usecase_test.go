package usecase

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Loved")

	_, err := env.engagementUC.FavoriteArticle(ctx, article.Slug, "author")
	assert.ErrorIs(t, err, contract.ErrBadRequest)

	detail, err := env.engagementUC.FavoriteArticle(ctx, article.Slug, "u1")
	require.NoError(t, err)
	assert.True(t, detail.Article.Favorited)
	assert.Equal(t, int64(1), detail.Article.FavoritesCount)

	_, err = env.engagementUC.FavoriteArticle(ctx, article.Slug, "u1")
	assert.ErrorIs(t, err, contract.ErrBadRequest)
	assert.Equal(t, int64(1), env.articles.rows[article.ID].FavoritesCount)

	detail, err = env.engagementUC.FavoriteArticle(ctx, article.Slug, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Article.FavoritesCount)
}

func TestUnfavoriteArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Fickle")

	_, err := env.engagementUC.UnfavoriteArticle(ctx, article.Slug, "u1")
	assert.ErrorIs(t, err, contract.ErrBadRequest)
	assert.Equal(t, int64(0), env.articles.rows[article.ID].FavoritesCount)

	_, err = env.engagementUC.FavoriteArticle(ctx, article.Slug, "u1")
	require.NoError(t, err)
	detail, err := env.engagementUC.UnfavoriteArticle(ctx, article.Slug, "u1")
	require.NoError(t, err)
	assert.False(t, detail.Article.Favorited)
	assert.Equal(t, int64(0), detail.Article.FavoritesCount)
	assert.Contains(t, env.cache.invalidated, article.Slug)
}

func TestBookmarks(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Keep")

	bookmark, err := env.engagementUC.BookmarkArticle(ctx, article.Slug, "u1")
	require.NoError(t, err)
	assert.Equal(t, article.Title, bookmark.ArticleTitle)
	assert.Equal(t, article.Slug, bookmark.ArticleSlug)

	_, err = env.engagementUC.BookmarkArticle(ctx, article.Slug, "u1")
	assert.ErrorIs(t, err, contract.ErrBadRequest)

	list, err := env.engagementUC.ListBookmarks(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, env.engagementUC.RemoveBookmark(ctx, article.Slug, "u1"))
	err = env.engagementUC.RemoveBookmark(ctx, article.Slug, "u1")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestRateArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Rated")

	for _, bad := range []float64{-0.5, 5.01} {
		_, _, err := env.engagementUC.RateArticle(ctx, article.Slug, "u1", bad)
		assert.ErrorIs(t, err, contract.ErrInvalidValue)
	}
	_, _, err := env.engagementUC.RateArticle(ctx, article.Slug, "author", 5)
	assert.ErrorIs(t, err, contract.ErrBadRequest)

	rating, summary, err := env.engagementUC.RateArticle(ctx, article.Slug, "u1", 4.257)
	require.NoError(t, err)
	assert.Equal(t, 4.26, rating.Score)
	assert.Equal(t, int64(1), summary.Count)

	_, summary, err = env.engagementUC.RateArticle(ctx, article.Slug, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, 2.0, summary.Average)

	_, summary, err = env.engagementUC.RateArticle(ctx, article.Slug, "u2", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.Equal(t, 3.0, summary.Average)
}
