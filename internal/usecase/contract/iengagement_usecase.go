package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type IEngagementUseCase interface {
	FavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error)
	UnfavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error)

	BookmarkArticle(ctx context.Context, slug, userID string) (*entity.Bookmark, error)
	RemoveBookmark(ctx context.Context, slug, userID string) error
	ListBookmarks(ctx context.Context, userID string) ([]*entity.Bookmark, error)

	RateArticle(ctx context.Context, slug, userID string, score float64) (*entity.Rating, entity.RatingSummary, error)
}

// SharePlatform names the channel an article is shared through.
type SharePlatform string

const (
	SharePlatformGmail    SharePlatform = "gmail"
	SharePlatformFacebook SharePlatform = "facebook"
	SharePlatformTwitter  SharePlatform = "twitter"
)

type IOutreachUseCase interface {
	// ShareArticle returns the share link for link-based platforms, or "" after emailing.
	ShareArticle(ctx context.Context, slug string, sharer entity.Identity, platform SharePlatform, shareWith string) (string, error)
	ReportArticle(ctx context.Context, slug string, reporter entity.Identity, reason string) (*entity.ArticleReport, error)
}
