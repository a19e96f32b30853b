package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// MockArticleUsecase serves a single canned article.
type MockArticleUsecase struct {
	Err error

	MockArticle entity.Article
	LastFilter  contract.ArticleFilter
	LastCaller  entity.Identity
	LastInput   usecasecontract.ArticleInput
	LastUpdate  usecasecontract.ArticleUpdate
	Deleted     []string
}

var _ usecasecontract.IArticleUseCase = (*MockArticleUsecase)(nil)

func NewMockArticleUsecase() *MockArticleUsecase {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &MockArticleUsecase{
		MockArticle: entity.Article{
			ID:             "article-1",
			Slug:           "hello-world-1a2b3c",
			Title:          "Hello World",
			Description:    "first post",
			Body:           "some words here",
			AuthorID:       "author-1",
			AuthorUsername: "ada",
			Tags:           []string{"go"},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

func (m *MockArticleUsecase) detail() *entity.ArticleDetail {
	a := m.MockArticle
	return &entity.ArticleDetail{
		Article: &a,
		Counts:  entity.ReactionCounts{Likes: 2, Dislikes: 1},
		Rating:  entity.RatingSummary{Average: 4.5, Count: 2},
	}
}

func (m *MockArticleUsecase) lookup(slug string) (*entity.ArticleDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if slug != m.MockArticle.Slug {
		return nil, contract.ErrNotFound
	}
	return m.detail(), nil
}

func (m *MockArticleUsecase) CreateArticle(ctx context.Context, author entity.Identity, input usecasecontract.ArticleInput) (*entity.ArticleDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastCaller, m.LastInput = author, input
	d := m.detail()
	d.Article.Title = input.Title
	d.Article.AuthorID = author.UserID
	d.Article.AuthorUsername = author.Username
	return d, nil
}

func (m *MockArticleUsecase) ListArticles(ctx context.Context, filter contract.ArticleFilter) ([]*entity.ArticleDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastFilter = filter
	return []*entity.ArticleDetail{m.detail()}, nil
}

func (m *MockArticleUsecase) GetArticle(ctx context.Context, slug string) (*entity.ArticleDetail, error) {
	return m.lookup(slug)
}

func (m *MockArticleUsecase) UpdateArticle(ctx context.Context, slug string, caller entity.Identity, update usecasecontract.ArticleUpdate) (*entity.ArticleDetail, error) {
	d, err := m.lookup(slug)
	if err != nil {
		return nil, err
	}
	if caller.UserID != d.Article.AuthorID {
		return nil, contract.ErrForbidden
	}
	m.LastUpdate = update
	if update.Title != nil {
		d.Article.Title = *update.Title
	}
	return d, nil
}

func (m *MockArticleUsecase) DeleteArticle(ctx context.Context, slug string, caller entity.Identity) error {
	d, err := m.lookup(slug)
	if err != nil {
		return err
	}
	if caller.UserID != d.Article.AuthorID && !caller.IsAdmin() {
		return contract.ErrForbidden
	}
	m.Deleted = append(m.Deleted, slug)
	return nil
}

func (m *MockArticleUsecase) PublishArticle(ctx context.Context, slug string, caller entity.Identity) (*entity.ArticleDetail, error) {
	d, err := m.lookup(slug)
	if err != nil {
		return nil, err
	}
	d.Article.IsPublished = true
	return d, nil
}

func (m *MockArticleUsecase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Tag{{ID: "t1", Name: "go"}, {ID: "t2", Name: "mongodb"}}, nil
}
