package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// MockReactionUsecase toggles votes in memory, keyed by target and user.
type MockReactionUsecase struct {
	Err error

	// KnownArticles maps slug to article id.
	KnownArticles map[string]string
	votes         map[string]entity.Vote

	LastTarget entity.Target
	LastUserID string
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		KnownArticles: map[string]string{"hello-world-1a2b3c": "article-1"},
		votes:         map[string]entity.Vote{},
	}
}

func (m *MockReactionUsecase) SubmitReaction(ctx context.Context, target entity.Target, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if userID == "" {
		return nil, contract.ErrUnauthorized
	}
	if !value.IsValid() || !target.Type.IsValid() {
		return nil, contract.ErrInvalidValue
	}
	m.LastTarget, m.LastUserID = target, userID

	key := target.String() + "|" + userID
	res := &entity.ReactionResult{}
	prev, ok := m.votes[key]
	switch {
	case !ok:
		m.votes[key] = value
		res.Action = entity.ReactionCreated
	case prev == value:
		delete(m.votes, key)
		res.Action = entity.ReactionRemoved
	default:
		m.votes[key] = value
		res.Action = entity.ReactionSwitched
	}
	if res.Action != entity.ReactionRemoved {
		now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		res.Reaction = &entity.Reaction{ID: "reaction-1", Target: target, UserID: userID, Value: value, CreatedAt: now, UpdatedAt: now}
	}
	res.Counts, _ = m.GetReactionCounts(ctx, target)
	return res, nil
}

func (m *MockReactionUsecase) CountReactions(ctx context.Context, target entity.Target, value entity.Vote) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if !value.IsValid() || !target.Type.IsValid() || target.ID == "" {
		return 0, contract.ErrInvalidValue
	}
	var n int64
	prefix := target.String() + "|"
	for k, v := range m.votes {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix && v == value {
			n++
		}
	}
	return n, nil
}

func (m *MockReactionUsecase) GetReactionCounts(ctx context.Context, target entity.Target) (entity.ReactionCounts, error) {
	likes, err := m.CountReactions(ctx, target, entity.VoteLike)
	if err != nil {
		return entity.ReactionCounts{}, err
	}
	dislikes, err := m.CountReactions(ctx, target, entity.VoteDislike)
	if err != nil {
		return entity.ReactionCounts{}, err
	}
	return entity.ReactionCounts{Likes: likes, Dislikes: dislikes}, nil
}

func (m *MockReactionUsecase) GetUserReaction(ctx context.Context, target entity.Target, userID string) (*entity.Reaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.votes[target.String()+"|"+userID]
	if !ok || userID == "" {
		return nil, nil
	}
	return &entity.Reaction{Target: target, UserID: userID, Value: v}, nil
}

func (m *MockReactionUsecase) ArticleTarget(ctx context.Context, slug string) (entity.Target, error) {
	id, ok := m.KnownArticles[slug]
	if !ok {
		return entity.Target{}, contract.ErrNotFound
	}
	return entity.ArticleTarget(id), nil
}

func (m *MockReactionUsecase) ReactToArticle(ctx context.Context, slug, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if userID == "" {
		return nil, contract.ErrUnauthorized
	}
	target, err := m.ArticleTarget(ctx, slug)
	if err != nil {
		return nil, err
	}
	return m.SubmitReaction(ctx, target, userID, value)
}
