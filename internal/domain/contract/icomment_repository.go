package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error)
	UpdateBody(ctx context.Context, id, body string) error
	Delete(ctx context.Context, id string) error
	DeleteByArticle(ctx context.Context, articleID string) ([]string, error)

	// Edit history
	AddHistory(ctx context.Context, history *entity.CommentHistory) error
	ListHistory(ctx context.Context, commentID string) ([]*entity.CommentHistory, error)
}
