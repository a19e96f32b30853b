package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// ReactionUsecase maintains the like/dislike ledger shared by all content types.
type ReactionUsecase struct {
	reactionRepo contract.IReactionRepository
	articleRepo  contract.IArticleRepository
	commentRepo  contract.ICommentRepository
	reader       *ArticleReader
	tx           contract.ITransactor
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	now          func() time.Time
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(
	reactionRepo contract.IReactionRepository,
	articleRepo contract.IArticleRepository,
	commentRepo contract.ICommentRepository,
	reader *ArticleReader,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ReactionUsecase {
	return &ReactionUsecase{
		reactionRepo: reactionRepo,
		articleRepo:  articleRepo,
		commentRepo:  commentRepo,
		reader:       reader,
		tx:           tx,
		uuidgen:      uuidgen,
		logger:       logger,
		now:          time.Now,
	}
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// SubmitReaction applies the toggle policy for value on target by userID:
// no reaction creates one, an opposite reaction is switched in place and
// the same reaction is removed.
func (u *ReactionUsecase) SubmitReaction(ctx context.Context, target entity.Target, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	if !value.IsValid() {
		return nil, fmt.Errorf("%w: vote must be like or dislike, got %q", contract.ErrInvalidValue, value)
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	var result *entity.ReactionResult
	apply := func(txCtx context.Context) error {
		if err := u.ensureTarget(txCtx, target); err != nil {
			return err
		}
		action, reaction, err := u.apply(txCtx, target, userID, value)
		if err != nil {
			return err
		}
		counts, err := countsFor(txCtx, u.reactionRepo, target)
		if err != nil {
			return err
		}
		result = &entity.ReactionResult{Action: action, Reaction: reaction, Counts: counts}
		return nil
	}

	err := u.tx.WithinTransaction(ctx, apply)
	if errors.Is(err, contract.ErrDuplicate) {
		// A concurrent first vote by the same user committed between our read
		// and our insert. Deciding again observes that row.
		u.logger.Debugf("reaction insert raced on %s user=%s, deciding again", target, userID)
		err = u.tx.WithinTransaction(ctx, apply)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to submit reaction: %w", err)
	}

	metrics.ObserveReaction(string(target.Type), string(result.Action))
	return result, nil
}

// apply performs the read-decide-write step. It must run inside a transaction.
func (u *ReactionUsecase) apply(ctx context.Context, target entity.Target, userID string, value entity.Vote) (entity.ReactionAction, *entity.Reaction, error) {
	existing, err := u.reactionRepo.FindReaction(ctx, target, userID)
	switch {
	case errors.Is(err, contract.ErrNotFound):
		now := u.now()
		reaction := &entity.Reaction{
			ID:        u.uuidgen.NewUUID(),
			Target:    target,
			UserID:    userID,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.reactionRepo.CreateReaction(ctx, reaction); err != nil {
			return "", nil, err
		}
		return entity.ReactionCreated, reaction, nil
	case err != nil:
		return "", nil, fmt.Errorf("failed to retrieve existing reaction: %w", err)
	case existing.Value != value:
		if err := u.reactionRepo.UpdateReactionValue(ctx, existing.ID, value); err != nil {
			return "", nil, fmt.Errorf("failed to switch reaction: %w", err)
		}
		existing.Value = value
		existing.UpdatedAt = u.now()
		return entity.ReactionSwitched, existing, nil
	default:
		if err := u.reactionRepo.DeleteReaction(ctx, existing.ID); err != nil {
			return "", nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
		return entity.ReactionRemoved, nil, nil
	}
}

func validateTarget(target entity.Target) error {
	if target.ID == "" {
		return fmt.Errorf("%w: target id is required", contract.ErrInvalidValue)
	}
	if !target.Type.IsValid() {
		return fmt.Errorf("%w: unknown target type %q", contract.ErrInvalidValue, target.Type)
	}
	return nil
}

// ensureTarget checks that the item exists. It runs inside the submission's
// transaction so the check and the write share one snapshot.
func (u *ReactionUsecase) ensureTarget(ctx context.Context, target entity.Target) error {
	var err error
	switch target.Type {
	case entity.TargetTypeArticle:
		_, err = u.articleRepo.GetArticleByID(ctx, target.ID)
	case entity.TargetTypeComment:
		_, err = u.commentRepo.GetByID(ctx, target.ID)
	default:
		return fmt.Errorf("%w: unknown target type %q", contract.ErrInvalidValue, target.Type)
	}
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return fmt.Errorf("%w: %s %s does not exist", contract.ErrNotFound, target.Type, target.ID)
		}
		return fmt.Errorf("failed to look up %s: %w", target, err)
	}
	return nil
}

// CountReactions returns the number of reactions with value on target.
func (u *ReactionUsecase) CountReactions(ctx context.Context, target entity.Target, value entity.Vote) (int64, error) {
	if !target.Type.IsValid() {
		return 0, fmt.Errorf("%w: unknown target type %q", contract.ErrInvalidValue, target.Type)
	}
	if !value.IsValid() {
		return 0, fmt.Errorf("%w: vote must be like or dislike, got %q", contract.ErrInvalidValue, value)
	}
	count, err := u.reactionRepo.CountReactions(ctx, target, value)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reactions for %s: %w", value, target, err)
	}
	return count, nil
}

// GetReactionCounts retrieves the total number of likes and dislikes for a target.
func (u *ReactionUsecase) GetReactionCounts(ctx context.Context, target entity.Target) (entity.ReactionCounts, error) {
	if !target.Type.IsValid() {
		return entity.ReactionCounts{}, fmt.Errorf("%w: unknown target type %q", contract.ErrInvalidValue, target.Type)
	}
	return countsFor(ctx, u.reactionRepo, target)
}

// GetUserReaction returns the user's reaction on target, or nil when there is none.
func (u *ReactionUsecase) GetUserReaction(ctx context.Context, target entity.Target, userID string) (*entity.Reaction, error) {
	if userID == "" {
		return nil, nil
	}
	reaction, err := u.reactionRepo.FindReaction(ctx, target, userID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user's reaction: %w", err)
	}
	return reaction, nil
}

// ArticleTarget resolves an article slug to its reaction target.
func (u *ReactionUsecase) ArticleTarget(ctx context.Context, slug string) (entity.Target, error) {
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return entity.Target{}, err
	}
	return entity.ArticleTarget(article.ID), nil
}

// ReactToArticle submits a reaction to the article addressed by slug.
func (u *ReactionUsecase) ReactToArticle(ctx context.Context, slug, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	target, err := u.ArticleTarget(ctx, slug)
	if err != nil {
		return nil, err
	}
	return u.SubmitReaction(ctx, target, userID, value)
}
