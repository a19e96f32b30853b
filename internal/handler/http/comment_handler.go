package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type CommentHandler struct {
	comments usecasecontract.ICommentUseCase
}

func NewCommentHandler(comments usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateComment handles POST /articles/:slug/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	detail, err := h.comments.CreateComment(c.Request.Context(), c.Param("slug"), identity(c), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"comment": dto.ToCommentResponse(detail)})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	details, err := h.comments.ListComments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentListResponse(details))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	detail, err := h.comments.GetComment(c.Request.Context(), c.Param("slug"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"comment": dto.ToCommentResponse(detail)})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	detail, err := h.comments.UpdateComment(c.Request.Context(), c.Param("slug"), c.Param("id"), identity(c).UserID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"comment": dto.ToCommentResponse(detail)})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.comments.DeleteComment(c.Request.Context(), c.Param("slug"), c.Param("id"), identity(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}

// GetCommentHistory lists the previous bodies of an edited comment.
func (h *CommentHandler) GetCommentHistory(c *gin.Context) {
	history, err := h.comments.GetCommentHistory(c.Request.Context(), c.Param("slug"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentHistoryResponse(c.Param("id"), history))
}
