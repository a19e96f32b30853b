package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type MockEngagementUsecase struct {
	Err       error
	Articles  *MockArticleUsecase
	Favorited map[string]bool
	Bookmarks map[string]*entity.Bookmark
	LastScore float64
}

var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase(articles *MockArticleUsecase) *MockEngagementUsecase {
	return &MockEngagementUsecase{Articles: articles, Favorited: map[string]bool{}, Bookmarks: map[string]*entity.Bookmark{}}
}

func (m *MockEngagementUsecase) FavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error) {
	d, err := m.Articles.GetArticle(ctx, slug)
	if err != nil {
		return nil, err
	}
	if d.Article.AuthorID == userID {
		return nil, fmt.Errorf("%w: can not favorite own article", contract.ErrBadRequest)
	}
	if m.Favorited[userID] {
		return nil, fmt.Errorf("%w: already favorited", contract.ErrBadRequest)
	}
	m.Favorited[userID] = true
	d.Article.Favorited = true
	d.Article.FavoritesCount = 1
	return d, nil
}

func (m *MockEngagementUsecase) UnfavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error) {
	d, err := m.Articles.GetArticle(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !m.Favorited[userID] {
		return nil, fmt.Errorf("%w: not favorited", contract.ErrBadRequest)
	}
	delete(m.Favorited, userID)
	return d, nil
}

func (m *MockEngagementUsecase) BookmarkArticle(ctx context.Context, slug, userID string) (*entity.Bookmark, error) {
	d, err := m.Articles.GetArticle(ctx, slug)
	if err != nil {
		return nil, err
	}
	if _, ok := m.Bookmarks[userID]; ok {
		return nil, fmt.Errorf("%w: already bookmarked", contract.ErrBadRequest)
	}
	b := &entity.Bookmark{ID: "bookmark-1", UserID: userID, ArticleID: d.Article.ID, ArticleSlug: slug, ArticleTitle: d.Article.Title,
		ArticleAuthor: d.Article.AuthorUsername, BookmarkedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	m.Bookmarks[userID] = b
	return b, nil
}

func (m *MockEngagementUsecase) RemoveBookmark(ctx context.Context, slug, userID string) error {
	if _, ok := m.Bookmarks[userID]; !ok {
		return fmt.Errorf("%w: bookmark not found", contract.ErrNotFound)
	}
	delete(m.Bookmarks, userID)
	return nil
}

func (m *MockEngagementUsecase) ListBookmarks(ctx context.Context, userID string) ([]*entity.Bookmark, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if b, ok := m.Bookmarks[userID]; ok {
		return []*entity.Bookmark{b}, nil
	}
	return []*entity.Bookmark{}, nil
}

func (m *MockEngagementUsecase) RateArticle(ctx context.Context, slug, userID string, score float64) (*entity.Rating, entity.RatingSummary, error) {
	if _, err := m.Articles.GetArticle(ctx, slug); err != nil {
		return nil, entity.RatingSummary{}, err
	}
	if score < entity.MinRatingScore || score > entity.MaxRatingScore {
		return nil, entity.RatingSummary{}, fmt.Errorf("%w: rating must be between 0 and 5", contract.ErrInvalidValue)
	}
	m.LastScore = score
	return &entity.Rating{ID: "rating-1", AuthorID: userID, Score: score}, entity.RatingSummary{Average: score, Count: 1}, nil
}
