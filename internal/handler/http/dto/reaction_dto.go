package dto

import (
	"strings"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ReactionRequest submits a vote on any target type.
type ReactionRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=article comment"`
	TargetID   string `json:"target_id" binding:"required"`
	Value      string `json:"value" binding:"required,vote"`
}

func (r ReactionRequest) Target() entity.Target {
	return entity.Target{Type: entity.TargetType(r.TargetType), ID: r.TargetID}
}

func (r ReactionRequest) Vote() entity.Vote {
	return entity.Vote(strings.ToLower(r.Value))
}

// CountQuery reads the target and value of a count request from the query string.
type CountQuery struct {
	TargetType string `form:"target_type" binding:"required"`
	TargetID   string `form:"target_id" binding:"required"`
	Value      string `form:"value" binding:"required"`
}

type ReactionView struct {
	ID         string    `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	UserID     string    `json:"user_id"`
	Value      string    `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToReactionView(r *entity.Reaction) *ReactionView {
	if r == nil {
		return nil
	}
	return &ReactionView{
		ID:         r.ID,
		TargetType: string(r.Type),
		TargetID:   r.Target.ID,
		UserID:     r.UserID,
		Value:      string(r.Value),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ReactionResponse is the outcome of a vote and the totals after it.
type ReactionResponse struct {
	Action   string        `json:"action"`
	Reaction *ReactionView `json:"reaction"`
	Likes    int64         `json:"likes"`
	Dislikes int64         `json:"dislikes"`
}

func ToReactionResponse(res *entity.ReactionResult) ReactionResponse {
	return ReactionResponse{
		Action:   string(res.Action),
		Reaction: ToReactionView(res.Reaction),
		Likes:    res.Counts.Likes,
		Dislikes: res.Counts.Dislikes,
	}
}

type CountResponse struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Value      string `json:"value"`
	Count      int64  `json:"count"`
}

// ReactionSummaryResponse holds a target's totals and, for signed-in callers, their own vote.
type ReactionSummaryResponse struct {
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	MyVote   string `json:"my_vote,omitempty"`
}
