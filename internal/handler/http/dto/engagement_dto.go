package dto

import (
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type RateRequest struct {
	Rating *float64 `json:"rating" binding:"required"`
}

type RatingResponse struct {
	Rating        float64   `json:"rating"`
	RatedOn       time.Time `json:"rated_on"`
	AverageRating float64   `json:"average_rating"`
	UserRates     int64     `json:"user_rates"`
}

func ToRatingResponse(r *entity.Rating, s entity.RatingSummary) RatingResponse {
	return RatingResponse{Rating: r.Score, RatedOn: r.RatedOn, AverageRating: s.Average, UserRates: s.Count}
}

type BookmarkResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	BookmarkedAt time.Time `json:"bookmarked_at"`
}

func ToBookmarkResponse(b *entity.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:           b.ID,
		Slug:         b.ArticleSlug,
		Title:        b.ArticleTitle,
		Author:       b.ArticleAuthor,
		Description:  b.Description,
		BookmarkedAt: b.BookmarkedAt,
	}
}

type BookmarkListResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}

func ToBookmarkListResponse(bookmarks []*entity.Bookmark) BookmarkListResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, ToBookmarkResponse(b))
	}
	return BookmarkListResponse{Bookmarks: out}
}

// SharePath binds the share route's path parameters.
type SharePath struct {
	Slug     string `uri:"slug" binding:"required"`
	Platform string `uri:"platform" binding:"required,platform"`
}

// ShareRequest carries the recipient for email shares; link platforms ignore it.
type ShareRequest struct {
	ShareWith string `json:"share_with" binding:"omitempty,email"`
}

type ShareResponse struct {
	Platform string `json:"platform"`
	Link     string `json:"link,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ReportRequest struct {
	Reason string `json:"reason" binding:"required,notblank,max=1000"`
}

type ReportResponse struct {
	ID        string    `json:"id"`
	Article   string    `json:"article"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func ToReportResponse(r *entity.ArticleReport) ReportResponse {
	return ReportResponse{ID: r.ID, Article: r.ArticleTitle, Reason: r.Reason, CreatedAt: r.CreatedAt}
}
