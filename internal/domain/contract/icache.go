package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// IArticleCache defines caching operations for articles.
// Derived counts are never cached, only the article document.
type IArticleCache interface {
	GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, bool, error)
	SetArticleBySlug(ctx context.Context, slug string, article *entity.Article) error
	InvalidateArticleBySlug(ctx context.Context, slug string) error
}
