package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
	"github.com/mikiasgoitom/Inkwell/internal/utils"
)

type categoryUseCase struct {
	categoryRepo contract.ICategoryRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

func NewCategoryUseCase(
	categoryRepo contract.ICategoryRepository,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("%w: category name is required", contract.ErrInvalidValue)
	}

	category := &entity.Category{
		ID:        uc.uuidgen.NewUUID(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, fmt.Errorf("%w: category %s already exists", contract.ErrConflict, slug)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", contract.ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// UpdateCategory renames a category. The slug is kept so article references stay valid.
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, slug, name string, caller entity.Identity) (*entity.Category, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can update categories", contract.ErrForbidden)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", contract.ErrInvalidValue)
	}
	category, err := uc.GetCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.UpdateCategory(ctx, slug, map[string]interface{}{"name": name}); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	category.Name = name
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, slug string, caller entity.Identity) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: only admins can delete categories", contract.ErrForbidden)
	}
	if err := uc.categoryRepo.DeleteCategory(ctx, slug); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", contract.ErrNotFound, slug)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	uc.logger.Infof("category %s deleted by %s", slug, caller.UserID)
	return nil
}
