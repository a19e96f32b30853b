package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// EngagementHandler covers favorites, bookmarks and ratings.
type EngagementHandler struct {
	engagement usecasecontract.IEngagementUseCase
}

func NewEngagementHandler(engagement usecasecontract.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

func (h *EngagementHandler) FavoriteArticle(c *gin.Context) {
	detail, err := h.engagement.FavoriteArticle(c.Request.Context(), c.Param("slug"), identity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"article": dto.ToArticleResponse(detail)})
}

func (h *EngagementHandler) UnfavoriteArticle(c *gin.Context) {
	detail, err := h.engagement.UnfavoriteArticle(c.Request.Context(), c.Param("slug"), identity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"article": dto.ToArticleResponse(detail)})
}

func (h *EngagementHandler) BookmarkArticle(c *gin.Context) {
	bookmark, err := h.engagement.BookmarkArticle(c.Request.Context(), c.Param("slug"), identity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToBookmarkResponse(bookmark))
}

func (h *EngagementHandler) RemoveBookmark(c *gin.Context) {
	if err := h.engagement.RemoveBookmark(c.Request.Context(), c.Param("slug"), identity(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Article removed from bookmarks")
}

func (h *EngagementHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.engagement.ListBookmarks(c.Request.Context(), identity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBookmarkListResponse(bookmarks))
}

func (h *EngagementHandler) RateArticle(c *gin.Context) {
	var req dto.RateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	rating, summary, err := h.engagement.RateArticle(c.Request.Context(), c.Param("slug"), identity(c).UserID, *req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToRatingResponse(rating, summary))
}
