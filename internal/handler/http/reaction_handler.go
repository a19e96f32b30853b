package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// ReactionHandler exposes the reaction ledger, both generically and per content type.
type ReactionHandler struct {
	reactions usecasecontract.IReactionUseCase
	comments  usecasecontract.ICommentUseCase
}

func NewReactionHandler(reactions usecasecontract.IReactionUseCase, comments usecasecontract.ICommentUseCase) *ReactionHandler {
	return &ReactionHandler{reactions: reactions, comments: comments}
}

// SubmitReaction handles POST /reactions for any target type.
func (h *ReactionHandler) SubmitReaction(c *gin.Context) {
	var req dto.ReactionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	res, err := h.reactions.SubmitReaction(c.Request.Context(), req.Target(), identity(c).UserID, req.Vote())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponse(res))
}

// CountReactions handles GET /reactions/count.
func (h *ReactionHandler) CountReactions(c *gin.Context) {
	var q dto.CountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	target := entity.Target{Type: entity.TargetType(q.TargetType), ID: q.TargetID}
	value := entity.Vote(strings.ToLower(q.Value))
	n, err := h.reactions.CountReactions(c.Request.Context(), target, value)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CountResponse{
		TargetType: string(target.Type),
		TargetID:   target.ID,
		Value:      string(value),
		Count:      n,
	})
}

func (h *ReactionHandler) LikeArticle(c *gin.Context) {
	h.reactToArticle(c, entity.VoteLike)
}

func (h *ReactionHandler) DislikeArticle(c *gin.Context) {
	h.reactToArticle(c, entity.VoteDislike)
}

func (h *ReactionHandler) reactToArticle(c *gin.Context, value entity.Vote) {
	res, err := h.reactions.ReactToArticle(c.Request.Context(), c.Param("slug"), identity(c).UserID, value)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponse(res))
}

// ArticleReactions returns the totals of an article and the caller's own vote when signed in.
func (h *ReactionHandler) ArticleReactions(c *gin.Context) {
	ctx := c.Request.Context()
	target, err := h.reactions.ArticleTarget(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	counts, err := h.reactions.GetReactionCounts(ctx, target)
	if err != nil {
		respondError(c, err)
		return
	}
	out := dto.ReactionSummaryResponse{Likes: counts.Likes, Dislikes: counts.Dislikes}
	mine, err := h.reactions.GetUserReaction(ctx, target, identity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if mine != nil {
		out.MyVote = string(mine.Value)
	}
	SuccessHandler(c, http.StatusOK, out)
}

func (h *ReactionHandler) LikeComment(c *gin.Context) {
	h.reactToComment(c, entity.VoteLike)
}

func (h *ReactionHandler) DislikeComment(c *gin.Context) {
	h.reactToComment(c, entity.VoteDislike)
}

func (h *ReactionHandler) reactToComment(c *gin.Context, value entity.Vote) {
	res, err := h.comments.ReactToComment(c.Request.Context(), c.Param("slug"), c.Param("id"), identity(c).UserID, value)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponse(res))
}
