package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// IReactionRepository persists reactions keyed by (target type, target id, user id).
type IReactionRepository interface {
	// FindReaction returns ErrNotFound when the user has no reaction on the target.
	FindReaction(ctx context.Context, target entity.Target, userID string) (*entity.Reaction, error)
	// CreateReaction returns ErrDuplicate when a reaction for the same key already exists.
	CreateReaction(ctx context.Context, reaction *entity.Reaction) error
	UpdateReactionValue(ctx context.Context, reactionID string, value entity.Vote) error
	DeleteReaction(ctx context.Context, reactionID string) error
	CountReactions(ctx context.Context, target entity.Target, value entity.Vote) (int64, error)
	DeleteReactionsForTarget(ctx context.Context, target entity.Target) (int64, error)
}
