package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

type IReactionUseCase interface {
	SubmitReaction(ctx context.Context, target entity.Target, userID string, value entity.Vote) (*entity.ReactionResult, error)
	CountReactions(ctx context.Context, target entity.Target, value entity.Vote) (int64, error)
	GetReactionCounts(ctx context.Context, target entity.Target) (entity.ReactionCounts, error)
	GetUserReaction(ctx context.Context, target entity.Target, userID string) (*entity.Reaction, error)

	// Article targets are addressed by slug at the edge.
	ReactToArticle(ctx context.Context, slug, userID string, value entity.Vote) (*entity.ReactionResult, error)
	ArticleTarget(ctx context.Context, slug string) (entity.Target, error)
}
