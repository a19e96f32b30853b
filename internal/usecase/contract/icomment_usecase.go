package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// CommentInput carries a new comment and its optional highlight anchor.
type CommentInput struct {
	Body           string
	ArticleSection *string
	StartPosition  *int
	EndPosition    *int
}

type ICommentUseCase interface {
	CreateComment(ctx context.Context, slug string, author entity.Identity, input CommentInput) (*entity.CommentDetail, error)
	ListComments(ctx context.Context, slug string) ([]*entity.CommentDetail, error)
	GetComment(ctx context.Context, slug, commentID string) (*entity.CommentDetail, error)
	UpdateComment(ctx context.Context, slug, commentID, userID, body string) (*entity.CommentDetail, error)
	DeleteComment(ctx context.Context, slug, commentID, userID string) error
	GetCommentHistory(ctx context.Context, slug, commentID string) ([]*entity.CommentHistory, error)
	ReactToComment(ctx context.Context, slug, commentID, userID string, value entity.Vote) (*entity.ReactionResult, error)
}
