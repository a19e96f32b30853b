package usecase

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.categories.rows["music"] = &entity.Category{ID: "c1", Name: "Music", Slug: "music"}

	detail, err := env.articleUC.CreateArticle(ctx, identity("author"), usecasecontract.ArticleInput{
		Title:    "Believer",
		Body:     "first things first",
		Category: "music",
		Tags:     []string{"rock", " rock ", "pop", ""},
	})
	require.NoError(t, err)
	article := detail.Article
	assert.Equal(t, "believer-"+article.ID[:8], article.Slug)
	assert.Equal(t, []string{"rock", "pop"}, article.Tags)
	assert.Equal(t, "user-author", article.AuthorUsername)
	assert.False(t, article.IsPublished)
	assert.Len(t, env.tags.rows, 2)

	tags, err := env.articleUC.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestCreateArticle_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.articleUC.CreateArticle(ctx, entity.Identity{}, usecasecontract.ArticleInput{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	_, err = env.articleUC.CreateArticle(ctx, identity("a"), usecasecontract.ArticleInput{Title: "  ", Body: "b"})
	assert.ErrorIs(t, err, contract.ErrInvalidValue)

	_, err = env.articleUC.CreateArticle(ctx, identity("a"), usecasecontract.ArticleInput{Title: "t", Body: "b", Category: "nope"})
	assert.ErrorIs(t, err, contract.ErrInvalidValue)
	assert.Empty(t, env.articles.rows)
}

func TestGetArticle_CachesDocumentButNotCounts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Cached")

	_, err := env.articleUC.GetArticle(ctx, article.Slug)
	require.NoError(t, err)
	assert.Contains(t, env.cache.rows, article.Slug)

	_, err = env.reactionUC.SubmitReaction(ctx, entity.ArticleTarget(article.ID), "u1", entity.VoteLike)
	require.NoError(t, err)

	detail, err := env.articleUC.GetArticle(ctx, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, env.cache.hits)
	assert.Equal(t, int64(1), detail.Counts.Likes)
}

func TestUpdateArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Draft")
	_, err := env.articleUC.GetArticle(ctx, article.Slug)
	require.NoError(t, err)

	_, err = env.articleUC.UpdateArticle(ctx, article.Slug, identity("intruder"), usecasecontract.ArticleUpdate{Title: strPtr("Mine now")})
	assert.ErrorIs(t, err, contract.ErrForbidden)

	detail, err := env.articleUC.UpdateArticle(ctx, article.Slug, identity("author"), usecasecontract.ArticleUpdate{
		Title: strPtr("Final"),
		Tags:  []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", detail.Article.Title)
	assert.Equal(t, article.Slug, detail.Article.Slug)
	assert.Equal(t, []string{"go"}, detail.Article.Tags)
	assert.Contains(t, env.cache.invalidated, article.Slug)

	_, err = env.articleUC.UpdateArticle(ctx, article.Slug, identity("author"), usecasecontract.ArticleUpdate{Body: strPtr(" ")})
	assert.ErrorIs(t, err, contract.ErrInvalidValue)
}

func TestDeleteArticle_RemovesDependents(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Doomed")
	comment := env.seedComment(article.ID, "u2", "nice")
	other := env.seedArticle("author", "Survivor")

	_, err := env.reactionUC.SubmitReaction(ctx, entity.ArticleTarget(article.ID), "u1", entity.VoteLike)
	require.NoError(t, err)
	_, err = env.reactionUC.SubmitReaction(ctx, entity.CommentTarget(comment.ID), "u1", entity.VoteLike)
	require.NoError(t, err)
	_, err = env.reactionUC.SubmitReaction(ctx, entity.ArticleTarget(other.ID), "u1", entity.VoteLike)
	require.NoError(t, err)
	_, err = env.engagementUC.FavoriteArticle(ctx, article.Slug, "u1")
	require.NoError(t, err)

	err = env.articleUC.DeleteArticle(ctx, article.Slug, identity("u1"))
	assert.ErrorIs(t, err, contract.ErrForbidden)

	require.NoError(t, env.articleUC.DeleteArticle(ctx, article.Slug, admin("moderator")))
	assert.NotContains(t, env.articles.rows, article.ID)
	assert.Empty(t, env.comments.rows)
	assert.Empty(t, env.favorites.rows)
	assert.Equal(t, 1, env.reactions.count())

	_, err = env.articleUC.GetArticle(ctx, article.Slug)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestPublishArticle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	article := env.seedArticle("author", "Soon")

	_, err := env.articleUC.PublishArticle(ctx, article.Slug, identity("someone"))
	assert.ErrorIs(t, err, contract.ErrForbidden)

	detail, err := env.articleUC.PublishArticle(ctx, article.Slug, identity("author"))
	require.NoError(t, err)
	assert.True(t, detail.Article.IsPublished)
	assert.True(t, env.articles.rows[article.ID].IsPublished)
}

func TestListArticles_FiltersByAuthor(t *testing.T) {
	env := newTestEnv()
	env.seedArticle("a", "One")
	env.seedArticle("b", "Two")

	details, err := env.articleUC.ListArticles(context.Background(), contract.ArticleFilter{Author: "user-a"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "One", details[0].Article.Title)
}

func TestCategoryUseCase(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	category, err := env.categoryUC.CreateCategory(ctx, "Science Fiction")
	require.NoError(t, err)
	assert.Equal(t, "science-fiction", category.Slug)

	_, err = env.categoryUC.CreateCategory(ctx, "science fiction")
	assert.ErrorIs(t, err, contract.ErrConflict)

	_, err = env.categoryUC.UpdateCategory(ctx, "science-fiction", "Sci-Fi", identity("u1"))
	assert.ErrorIs(t, err, contract.ErrForbidden)

	updated, err := env.categoryUC.UpdateCategory(ctx, "science-fiction", "Sci-Fi", admin("root"))
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", updated.Name)
	assert.Equal(t, "science-fiction", updated.Slug)

	require.NoError(t, env.categoryUC.DeleteCategory(ctx, "science-fiction", admin("root")))
	_, err = env.categoryUC.GetCategory(ctx, "science-fiction")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
