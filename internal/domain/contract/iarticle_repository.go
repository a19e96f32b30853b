package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ArticleFilter narrows article listings. Empty fields are ignored.
type ArticleFilter struct {
	Tag         string
	Author      string
	Title       string
	FavoritedBy string
	Search      string
}

// IArticleRepository provides methods for managing article data in the database.
type IArticleRepository interface {
	CreateArticle(ctx context.Context, article *entity.Article) error
	GetArticleByID(ctx context.Context, articleID string) (*entity.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	UpdateArticle(ctx context.Context, articleID string, updates map[string]interface{}) error
	DeleteArticle(ctx context.Context, articleID string) error
	IncrementFavorites(ctx context.Context, articleID string) error
	// DecrementFavorites never takes the counter below zero and clears Favorited at zero.
	DecrementFavorites(ctx context.Context, articleID string) error
}
