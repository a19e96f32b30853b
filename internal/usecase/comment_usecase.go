package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

const maxCommentLength = 1000

type commentUseCase struct {
	commentRepo  contract.ICommentRepository
	reactionRepo contract.IReactionRepository
	reactions    usecasecontract.IReactionUseCase
	reader       *ArticleReader
	tx           contract.ITransactor
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	reactionRepo contract.IReactionRepository,
	reactions usecasecontract.IReactionUseCase,
	reader *ArticleReader,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		reactions:    reactions,
		reader:       reader,
		tx:           tx,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

// Core Operations
func (uc *commentUseCase) CreateComment(ctx context.Context, slug string, author entity.Identity, input usecasecontract.CommentInput) (*entity.CommentDetail, error) {
	if author.UserID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	if err := validateContent(input.Body); err != nil {
		return nil, err
	}
	if err := validateAnchor(input); err != nil {
		return nil, err
	}
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:             uc.uuidgen.NewUUID(),
		ArticleID:      article.ID,
		UserID:         author.UserID,
		Username:       author.Username,
		Body:           strings.TrimSpace(input.Body),
		ArticleSection: input.ArticleSection,
		StartPosition:  input.StartPosition,
		EndPosition:    input.EndPosition,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &entity.CommentDetail{Comment: comment}, nil
}

// ListComments returns the comments of an article, oldest first. No comments yields an empty list.
func (uc *commentUseCase) ListComments(ctx context.Context, slug string) ([]*entity.CommentDetail, error) {
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	details := make([]*entity.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		detail, err := uc.detail(ctx, comment)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (uc *commentUseCase) GetComment(ctx context.Context, slug, commentID string) (*entity.CommentDetail, error) {
	comment, err := uc.commentOnArticle(ctx, slug, commentID)
	if err != nil {
		return nil, err
	}
	return uc.detail(ctx, comment)
}

// UpdateComment replaces the body and keeps the previous one in the history.
func (uc *commentUseCase) UpdateComment(ctx context.Context, slug, commentID, userID, body string) (*entity.CommentDetail, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	if err := validateContent(body); err != nil {
		return nil, err
	}
	comment, err := uc.commentOnArticle(ctx, slug, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, fmt.Errorf("%w: can only edit your own comments", contract.ErrForbidden)
	}

	now := time.Now()
	err = uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		history := &entity.CommentHistory{
			ID:        uc.uuidgen.NewUUID(),
			CommentID: comment.ID,
			Body:      comment.Body,
			UpdatedAt: now,
		}
		if err := uc.commentRepo.AddHistory(txCtx, history); err != nil {
			return err
		}
		return uc.commentRepo.UpdateBody(txCtx, comment.ID, strings.TrimSpace(body))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	comment.Body = strings.TrimSpace(body)
	comment.UpdatedAt = now
	return uc.detail(ctx, comment)
}

// DeleteComment removes the comment together with its history and reactions.
func (uc *commentUseCase) DeleteComment(ctx context.Context, slug, commentID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	comment, err := uc.commentOnArticle(ctx, slug, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return fmt.Errorf("%w: can only delete your own comments", contract.ErrForbidden)
	}

	err = uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.reactionRepo.DeleteReactionsForTarget(txCtx, entity.CommentTarget(comment.ID)); err != nil {
			return err
		}
		return uc.commentRepo.Delete(txCtx, comment.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (uc *commentUseCase) GetCommentHistory(ctx context.Context, slug, commentID string) ([]*entity.CommentHistory, error) {
	comment, err := uc.commentOnArticle(ctx, slug, commentID)
	if err != nil {
		return nil, err
	}
	history, err := uc.commentRepo.ListHistory(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment history: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: comment has not been edited", contract.ErrBadRequest)
	}
	return history, nil
}

// ReactToComment submits a like or dislike on a comment of the article.
func (uc *commentUseCase) ReactToComment(ctx context.Context, slug, commentID, userID string, value entity.Vote) (*entity.ReactionResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	comment, err := uc.commentOnArticle(ctx, slug, commentID)
	if err != nil {
		return nil, err
	}
	return uc.reactions.SubmitReaction(ctx, entity.CommentTarget(comment.ID), userID, value)
}

func (uc *commentUseCase) commentOnArticle(ctx context.Context, slug, commentID string) (*entity.Comment, error) {
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: comment %s does not exist", contract.ErrNotFound, commentID)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.ArticleID != article.ID {
		return nil, fmt.Errorf("%w: comment %s does not belong to article %s", contract.ErrNotFound, commentID, slug)
	}
	return comment, nil
}

func (uc *commentUseCase) detail(ctx context.Context, comment *entity.Comment) (*entity.CommentDetail, error) {
	counts, err := countsFor(ctx, uc.reactionRepo, entity.CommentTarget(comment.ID))
	if err != nil {
		return nil, err
	}
	return &entity.CommentDetail{Comment: comment, Counts: counts}, nil
}

func validateContent(content string) error {
	content = strings.TrimSpace(content)

	if len(content) == 0 {
		return fmt.Errorf("%w: comment content cannot be empty", contract.ErrInvalidValue)
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return fmt.Errorf("%w: comment content too long (max %d characters)", contract.ErrInvalidValue, maxCommentLength)
	}
	return nil
}

// validateAnchor checks the optional highlighted range of a comment.
func validateAnchor(input usecasecontract.CommentInput) error {
	start, end := input.StartPosition, input.EndPosition
	if (start == nil) != (end == nil) {
		return fmt.Errorf("%w: start_position and end_position must be given together", contract.ErrInvalidValue)
	}
	if start != nil && (*start < 0 || *end < *start) {
		return fmt.Errorf("%w: invalid highlight range %d..%d", contract.ErrInvalidValue, *start, *end)
	}
	return nil
}
