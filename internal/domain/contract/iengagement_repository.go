package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// IFavoriteRepository stores the favorite relation between users and articles.
type IFavoriteRepository interface {
	// AddFavorite returns ErrDuplicate when the user already favorited the article.
	AddFavorite(ctx context.Context, favorite *entity.Favorite) error
	// RemoveFavorite returns ErrNotFound when there is nothing to remove.
	RemoveFavorite(ctx context.Context, userID, articleID string) error
	IsFavorited(ctx context.Context, userID, articleID string) (bool, error)
	DeleteByArticle(ctx context.Context, articleID string) error
}

type IBookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error
	DeleteBookmark(ctx context.Context, userID, articleID string) error
	ListBookmarksByUser(ctx context.Context, userID string) ([]*entity.Bookmark, error)
}

type IRatingRepository interface {
	// UpsertRating creates the user's rating or replaces its score.
	UpsertRating(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)
	GetRatingSummary(ctx context.Context, articleID string) (entity.RatingSummary, error)
}

type IReportRepository interface {
	// CreateReport returns ErrDuplicate when the reporter already reported the article.
	CreateReport(ctx context.Context, report *entity.ArticleReport) error
}
