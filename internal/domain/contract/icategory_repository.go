package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, slug string, updates map[string]interface{}) error
	DeleteCategory(ctx context.Context, slug string) error
}
