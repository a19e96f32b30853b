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

// ArticleReader resolves articles by slug through the optional cache and
// assembles their derived aggregates. It is shared by every usecase that
// addresses articles by slug.
type ArticleReader struct {
	articleRepo  contract.IArticleRepository
	categoryRepo contract.ICategoryRepository
	reactionRepo contract.IReactionRepository
	ratingRepo   contract.IRatingRepository
	cache        contract.IArticleCache
	logger       usecasecontract.IAppLogger
}

// NewArticleReader creates an ArticleReader. cache may be nil.
func NewArticleReader(
	articleRepo contract.IArticleRepository,
	categoryRepo contract.ICategoryRepository,
	reactionRepo contract.IReactionRepository,
	ratingRepo contract.IRatingRepository,
	cache contract.IArticleCache,
	logger usecasecontract.IAppLogger,
) *ArticleReader {
	return &ArticleReader{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		reactionRepo: reactionRepo,
		ratingRepo:   ratingRepo,
		cache:        cache,
		logger:       logger,
	}
}

// BySlug returns the article for slug, cache first.
func (r *ArticleReader) BySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", contract.ErrInvalidValue)
	}

	if r.cache != nil {
		t0 := time.Now()
		cached, found, err := r.cache.GetArticleBySlug(ctx, slug)
		elapsed := time.Since(t0)
		switch {
		case err != nil:
			metrics.IncCacheError()
			r.logger.Warningf("cache error: article slug=%s err=%v", slug, err)
		case found && cached != nil:
			metrics.IncCacheHit(elapsed.Seconds())
			return cached, nil
		default:
			metrics.IncCacheMiss(elapsed.Seconds())
		}
	}

	article, err := r.articleRepo.GetArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: article %s does not exist", contract.ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.SetArticleBySlug(ctx, slug, article); err != nil {
			r.logger.Warningf("cache set failed: article slug=%s err=%v", slug, err)
		}
	}
	return article, nil
}

// Fresh reads the article straight from the store, bypassing the cache.
func (r *ArticleReader) Fresh(ctx context.Context, articleID string) (*entity.Article, error) {
	article, err := r.articleRepo.GetArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, fmt.Errorf("%w: article %s does not exist", contract.ErrNotFound, articleID)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// Invalidate drops the cached copy of slug. Failures are logged only.
func (r *ArticleReader) Invalidate(ctx context.Context, slug string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateArticleBySlug(ctx, slug); err != nil {
		r.logger.Warningf("cache invalidate failed: article slug=%s err=%v", slug, err)
	}
}

// Detail attaches the category, live reaction counts and rating summary.
func (r *ArticleReader) Detail(ctx context.Context, article *entity.Article) (*entity.ArticleDetail, error) {
	counts, err := countsFor(ctx, r.reactionRepo, entity.ArticleTarget(article.ID))
	if err != nil {
		return nil, err
	}
	summary, err := r.ratingRepo.GetRatingSummary(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ratings for article %s: %w", article.ID, err)
	}

	detail := &entity.ArticleDetail{Article: article, Counts: counts, Rating: summary}
	if article.Category != "" && r.categoryRepo != nil {
		category, err := r.categoryRepo.GetCategoryBySlug(ctx, article.Category)
		switch {
		case err == nil:
			detail.Category = category
		case errors.Is(err, contract.ErrNotFound):
			// category was deleted after the article was written
		default:
			return nil, fmt.Errorf("failed to load category %s: %w", article.Category, err)
		}
	}
	return detail, nil
}

// countsFor computes the like and dislike totals of target from reaction rows.
func countsFor(ctx context.Context, repo contract.IReactionRepository, target entity.Target) (entity.ReactionCounts, error) {
	likes, err := repo.CountReactions(ctx, target, entity.VoteLike)
	if err != nil {
		return entity.ReactionCounts{}, fmt.Errorf("failed to count likes for %s: %w", target, err)
	}
	dislikes, err := repo.CountReactions(ctx, target, entity.VoteDislike)
	if err != nil {
		return entity.ReactionCounts{}, fmt.Errorf("failed to count dislikes for %s: %w", target, err)
	}
	return entity.ReactionCounts{Likes: likes, Dislikes: dislikes}, nil
}
