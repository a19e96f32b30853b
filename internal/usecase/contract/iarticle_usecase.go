package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ArticleInput carries the fields of a new article.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
	Category    string
	Tags        []string
}

// ArticleUpdate carries a partial update. Nil fields are left unchanged.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
	Category    *string
	Tags        []string
}

type IArticleUseCase interface {
	CreateArticle(ctx context.Context, author entity.Identity, input ArticleInput) (*entity.ArticleDetail, error)
	ListArticles(ctx context.Context, filter contract.ArticleFilter) ([]*entity.ArticleDetail, error)
	GetArticle(ctx context.Context, slug string) (*entity.ArticleDetail, error)
	UpdateArticle(ctx context.Context, slug string, caller entity.Identity, update ArticleUpdate) (*entity.ArticleDetail, error)
	DeleteArticle(ctx context.Context, slug string, caller entity.Identity) error
	PublishArticle(ctx context.Context, slug string, caller entity.Identity) (*entity.ArticleDetail, error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)
}

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, slug string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, slug, name string, caller entity.Identity) (*entity.Category, error)
	DeleteCategory(ctx context.Context, slug string, caller entity.Identity) error
}
