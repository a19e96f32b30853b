package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// MockCommentUsecase holds comments of one article in memory and routes reactions to Reactions.
type MockCommentUsecase struct {
	Err       error
	Slug      string
	Comments  map[string]*entity.Comment
	History   map[string][]*entity.CommentHistory
	Reactions *MockReactionUsecase
	LastInput usecasecontract.CommentInput
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase(reactions *MockReactionUsecase) *MockCommentUsecase {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &MockCommentUsecase{
		Slug: "hello-world-1a2b3c",
		Comments: map[string]*entity.Comment{
			"comment-1": {ID: "comment-1", ArticleID: "article-1", UserID: "reader-1", Username: "bob", Body: "nice", CreatedAt: now, UpdatedAt: now},
		},
		History:   map[string][]*entity.CommentHistory{},
		Reactions: reactions,
	}
}

func (m *MockCommentUsecase) find(slug, commentID string) (*entity.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if slug != m.Slug {
		return nil, fmt.Errorf("%w: article %s does not exist", contract.ErrNotFound, slug)
	}
	c, ok := m.Comments[commentID]
	if !ok {
		return nil, fmt.Errorf("%w: comment %s does not exist", contract.ErrNotFound, commentID)
	}
	return c, nil
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, slug string, author entity.Identity, input usecasecontract.CommentInput) (*entity.CommentDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if slug != m.Slug {
		return nil, contract.ErrNotFound
	}
	m.LastInput = input
	c := &entity.Comment{ID: "comment-2", ArticleID: "article-1", UserID: author.UserID, Username: author.Username, Body: input.Body,
		ArticleSection: input.ArticleSection, StartPosition: input.StartPosition, EndPosition: input.EndPosition}
	m.Comments[c.ID] = c
	return &entity.CommentDetail{Comment: c}, nil
}

func (m *MockCommentUsecase) ListComments(ctx context.Context, slug string) ([]*entity.CommentDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if slug != m.Slug {
		return nil, contract.ErrNotFound
	}
	out := make([]*entity.CommentDetail, 0, len(m.Comments))
	for _, c := range m.Comments {
		out = append(out, &entity.CommentDetail{Comment: c})
	}
	return out, nil
}

func (m *MockCommentUsecase) GetComment(ctx context.Context, slug, commentID string) (*entity.CommentDetail, error) {
	c, err := m.find(slug, commentID)
	if err != nil {
		return nil, err
	}
	return &entity.CommentDetail{Comment: c}, nil
}

func (m *MockCommentUsecase) UpdateComment(ctx context.Context, slug, commentID, userID, body string) (*entity.CommentDetail, error) {
	c, err := m.find(slug, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, contract.ErrForbidden
	}
	m.History[commentID] = append(m.History[commentID], &entity.CommentHistory{CommentID: commentID, Body: c.Body, UpdatedAt: c.UpdatedAt})
	c.Body = body
	return &entity.CommentDetail{Comment: c}, nil
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, slug, commentID, userID string) error {
	c, err := m.find(slug, commentID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return contract.ErrForbidden
	}
	delete(m.Comments, commentID)
	return nil
}

func (m *MockCommentUsecase) GetCommentHistory(ctx context.Context, slug, commentID string) ([]*entity.CommentHistory, error) {
	if _, err := m.find(slug, commentID); err != nil {
		return nil, err
	}
	h := m.History[commentID]
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: comment has not been edited", contract.ErrBadRequest)
	}
	return h, nil
}

func (m *MockCommentUsecase) ReactToComment(ctx context.Context, slug, commentID, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if userID == "" {
		return nil, contract.ErrUnauthorized
	}
	if _, err := m.find(slug, commentID); err != nil {
		return nil, err
	}
	return m.Reactions.SubmitReaction(ctx, entity.CommentTarget(commentID), userID, value)
}
