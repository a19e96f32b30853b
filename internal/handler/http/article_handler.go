package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type ArticleHandler struct {
	articles usecasecontract.IArticleUseCase
}

func NewArticleHandler(articles usecasecontract.IArticleUseCase) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	detail, err := h.articles.CreateArticle(c.Request.Context(), identity(c), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"article": dto.ToArticleResponse(detail)})
}

// ListArticles supports ?tag=&author=&title=&favorited=&search=
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := contract.ArticleFilter{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		Title:       c.Query("title"),
		FavoritedBy: c.Query("favorited"),
		Search:      c.Query("search"),
	}
	details, err := h.articles.ListArticles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToArticleListResponse(details))
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	detail, err := h.articles.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"article": dto.ToArticleResponse(detail)})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	detail, err := h.articles.UpdateArticle(c.Request.Context(), c.Param("slug"), identity(c), req.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"article": dto.ToArticleResponse(detail)})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articles.DeleteArticle(c.Request.Context(), c.Param("slug"), identity(c)); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Article deleted successfully")
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	detail, err := h.articles.PublishArticle(c.Request.Context(), c.Param("slug"), identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"article": dto.ToArticleResponse(detail)})
}

func (h *ArticleHandler) ListTags(c *gin.Context) {
	tags, err := h.articles.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToTagListResponse(tags))
}
