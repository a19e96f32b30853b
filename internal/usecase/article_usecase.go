package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
	"github.com/mikiasgoitom/Inkwell/internal/utils"
)

// ArticleUseCaseImpl implements the IArticleUseCase interface
type ArticleUseCaseImpl struct {
	articleRepo  contract.IArticleRepository
	categoryRepo contract.ICategoryRepository
	tagRepo      contract.ITagRepository
	commentRepo  contract.ICommentRepository
	reactionRepo contract.IReactionRepository
	favoriteRepo contract.IFavoriteRepository
	reader       *ArticleReader
	tx           contract.ITransactor
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewArticleUseCase creates a new instance of ArticleUseCase
func NewArticleUseCase(
	articleRepo contract.IArticleRepository,
	categoryRepo contract.ICategoryRepository,
	tagRepo contract.ITagRepository,
	commentRepo contract.ICommentRepository,
	reactionRepo contract.IReactionRepository,
	favoriteRepo contract.IFavoriteRepository,
	reader *ArticleReader,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ArticleUseCaseImpl {
	return &ArticleUseCaseImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		favoriteRepo: favoriteRepo,
		reader:       reader,
		tx:           tx,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

// check if ArticleUseCaseImpl implements the IArticleUseCase
var _ usecasecontract.IArticleUseCase = (*ArticleUseCaseImpl)(nil)

// CreateArticle creates a new article with tags created on demand
func (uc *ArticleUseCaseImpl) CreateArticle(ctx context.Context, author entity.Identity, input usecasecontract.ArticleInput) (*entity.ArticleDetail, error) {
	if author.UserID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", contract.ErrInvalidValue)
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: body is required", contract.ErrInvalidValue)
	}
	if err := uc.checkCategory(ctx, input.Category); err != nil {
		return nil, err
	}

	tags, err := uc.resolveTags(ctx, input.Tags)
	if err != nil {
		return nil, err
	}

	id := uc.uuidgen.NewUUID()
	now := time.Now()
	article := &entity.Article{
		ID:             id,
		Slug:           utils.UniqueSlug(title, id),
		Title:          title,
		Description:    strings.TrimSpace(input.Description),
		Body:           input.Body,
		AuthorID:       author.UserID,
		AuthorUsername: author.Username,
		Category:       input.Category,
		Tags:           tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.articleRepo.CreateArticle(ctx, article); err != nil {
		uc.logger.Errorf("failed to create article: %v", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return &entity.ArticleDetail{Article: article}, nil
}

// ListArticles returns every article matching filter with its aggregates
func (uc *ArticleUseCaseImpl) ListArticles(ctx context.Context, filter contract.ArticleFilter) ([]*entity.ArticleDetail, error) {
	articles, err := uc.articleRepo.ListArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	details := make([]*entity.ArticleDetail, 0, len(articles))
	for _, article := range articles {
		detail, err := uc.reader.Detail(ctx, article)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// GetArticle retrieves an article by slug
func (uc *ArticleUseCaseImpl) GetArticle(ctx context.Context, slug string) (*entity.ArticleDetail, error) {
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.reader.Detail(ctx, article)
}

// UpdateArticle applies a partial update. Only the author may edit; the slug stays stable.
func (uc *ArticleUseCaseImpl) UpdateArticle(ctx context.Context, slug string, caller entity.Identity, update usecasecontract.ArticleUpdate) (*entity.ArticleDetail, error) {
	article, err := uc.ownedArticle(ctx, slug, caller)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", contract.ErrInvalidValue)
		}
		updates["title"] = title
	}
	if update.Description != nil {
		updates["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Body != nil {
		if strings.TrimSpace(*update.Body) == "" {
			return nil, fmt.Errorf("%w: body cannot be empty", contract.ErrInvalidValue)
		}
		updates["body"] = *update.Body
	}
	if update.Category != nil {
		if err := uc.checkCategory(ctx, *update.Category); err != nil {
			return nil, err
		}
		updates["category"] = *update.Category
	}
	if update.Tags != nil {
		tags, err := uc.resolveTags(ctx, update.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = tags
	}
	if len(updates) == 0 {
		return uc.reader.Detail(ctx, article)
	}
	updates["updated_at"] = time.Now()

	if err := uc.articleRepo.UpdateArticle(ctx, article.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	uc.reader.Invalidate(ctx, slug)

	fresh, err := uc.reader.Fresh(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return uc.reader.Detail(ctx, fresh)
}

// DeleteArticle removes the article with its comments, favorites and reactions.
// The author or an admin may delete.
func (uc *ArticleUseCaseImpl) DeleteArticle(ctx context.Context, slug string, caller entity.Identity) error {
	if caller.UserID == "" {
		return fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != caller.UserID && !caller.IsAdmin() {
		return fmt.Errorf("%w: only the author or an admin can delete this article", contract.ErrForbidden)
	}

	err = uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		commentIDs, err := uc.commentRepo.DeleteByArticle(txCtx, article.ID)
		if err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		for _, id := range commentIDs {
			if _, err := uc.reactionRepo.DeleteReactionsForTarget(txCtx, entity.CommentTarget(id)); err != nil {
				return fmt.Errorf("failed to delete comment reactions: %w", err)
			}
		}
		if _, err := uc.reactionRepo.DeleteReactionsForTarget(txCtx, entity.ArticleTarget(article.ID)); err != nil {
			return fmt.Errorf("failed to delete article reactions: %w", err)
		}
		if err := uc.favoriteRepo.DeleteByArticle(txCtx, article.ID); err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		return uc.articleRepo.DeleteArticle(txCtx, article.ID)
	})
	if err != nil {
		uc.logger.Errorf("failed to delete article %s: %v", article.ID, err)
		return fmt.Errorf("failed to delete article: %w", err)
	}
	uc.reader.Invalidate(ctx, slug)
	return nil
}

// PublishArticle marks the article as published. Only the author may publish.
func (uc *ArticleUseCaseImpl) PublishArticle(ctx context.Context, slug string, caller entity.Identity) (*entity.ArticleDetail, error) {
	article, err := uc.ownedArticle(ctx, slug, caller)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		updates := map[string]interface{}{"is_published": true, "updated_at": time.Now()}
		if err := uc.articleRepo.UpdateArticle(ctx, article.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to publish article: %w", err)
		}
		uc.reader.Invalidate(ctx, slug)
		article.IsPublished = true
	}
	return uc.reader.Detail(ctx, article)
}

// ListTags returns every known tag
func (uc *ArticleUseCaseImpl) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := uc.tagRepo.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (uc *ArticleUseCaseImpl) ownedArticle(ctx context.Context, slug string, caller entity.Identity) (*entity.Article, error) {
	if caller.UserID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := uc.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != caller.UserID {
		return nil, fmt.Errorf("%w: only the author can modify this article", contract.ErrForbidden)
	}
	return article, nil
}

func (uc *ArticleUseCaseImpl) checkCategory(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	if _, err := uc.categoryRepo.GetCategoryBySlug(ctx, slug); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", contract.ErrInvalidValue, slug)
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	return nil
}

func (uc *ArticleUseCaseImpl) resolveTags(ctx context.Context, names []string) ([]string, error) {
	names = utils.NormalizeTags(names)
	if len(names) == 0 {
		return []string{}, nil
	}
	tags, err := uc.tagRepo.GetOrCreateTags(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	resolved := make([]string, 0, len(tags))
	for _, tag := range tags {
		resolved = append(resolved, tag.Name)
	}
	return resolved, nil
}
