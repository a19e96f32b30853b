package dto

import (
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// CreateCommentRequest optionally anchors the comment to a highlighted section.
type CreateCommentRequest struct {
	Body           string  `json:"body" binding:"required,notblank,max=1000"`
	ArticleSection *string `json:"article_section"`
	StartPosition  *int    `json:"start_position" binding:"omitempty,min=0"`
	EndPosition    *int    `json:"end_position" binding:"omitempty,min=0"`
}

func (r CreateCommentRequest) ToInput() usecasecontract.CommentInput {
	return usecasecontract.CommentInput{
		Body:           r.Body,
		ArticleSection: r.ArticleSection,
		StartPosition:  r.StartPosition,
		EndPosition:    r.EndPosition,
	}
}

type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required,notblank,max=1000"`
}

type CommentResponse struct {
	ID             string         `json:"id"`
	Body           string         `json:"body"`
	Author         AuthorResponse `json:"author"`
	ArticleSection *string        `json:"article_section,omitempty"`
	StartPosition  *int           `json:"start_position,omitempty"`
	EndPosition    *int           `json:"end_position,omitempty"`
	Likes          int64          `json:"likes"`
	Dislikes       int64          `json:"dislikes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func ToCommentResponse(d *entity.CommentDetail) CommentResponse {
	c := d.Comment
	return CommentResponse{
		ID:             c.ID,
		Body:           c.Body,
		Author:         AuthorResponse{ID: c.UserID, Username: c.Username},
		ArticleSection: c.ArticleSection,
		StartPosition:  c.StartPosition,
		EndPosition:    c.EndPosition,
		Likes:          d.Counts.Likes,
		Dislikes:       d.Counts.Dislikes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type CommentListResponse struct {
	Comments      []CommentResponse `json:"comments"`
	CommentsCount int               `json:"commentsCount"`
}

func ToCommentListResponse(details []*entity.CommentDetail) CommentListResponse {
	out := make([]CommentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ToCommentResponse(d))
	}
	return CommentListResponse{Comments: out, CommentsCount: len(out)}
}

type CommentHistoryResponse struct {
	CommentID string                 `json:"comment_id"`
	History   []CommentHistoryRecord `json:"history"`
}

type CommentHistoryRecord struct {
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCommentHistoryResponse(commentID string, history []*entity.CommentHistory) CommentHistoryResponse {
	out := make([]CommentHistoryRecord, 0, len(history))
	for _, h := range history {
		out = append(out, CommentHistoryRecord{Body: h.Body, UpdatedAt: h.UpdatedAt})
	}
	return CommentHistoryResponse{CommentID: commentID, History: out}
}
