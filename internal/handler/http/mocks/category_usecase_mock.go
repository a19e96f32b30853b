package mocks

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type MockCategoryUsecase struct {
	Err        error
	Categories map[string]*entity.Category
}

var _ usecasecontract.ICategoryUseCase = (*MockCategoryUsecase)(nil)

func NewMockCategoryUsecase() *MockCategoryUsecase {
	return &MockCategoryUsecase{Categories: map[string]*entity.Category{
		"backend": {ID: "c1", Name: "Backend", Slug: "backend"},
	}}
}

func (m *MockCategoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c := &entity.Category{ID: "c2", Name: name, Slug: "new-category"}
	m.Categories[c.Slug] = c
	return c, nil
}

func (m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*entity.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCategoryUsecase) GetCategory(ctx context.Context, slug string) (*entity.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Categories[slug]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return c, nil
}

func (m *MockCategoryUsecase) UpdateCategory(ctx context.Context, slug, name string, caller entity.Identity) (*entity.Category, error) {
	if !caller.IsAdmin() {
		return nil, contract.ErrForbidden
	}
	c, err := m.GetCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.Name = name
	return c, nil
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, slug string, caller entity.Identity) error {
	if !caller.IsAdmin() {
		return contract.ErrForbidden
	}
	if _, err := m.GetCategory(ctx, slug); err != nil {
		return err
	}
	delete(m.Categories, slug)
	return nil
}
