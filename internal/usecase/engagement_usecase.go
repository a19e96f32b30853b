package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// EngagementUsecase handles favorites, bookmarks and ratings of articles.
type EngagementUsecase struct {
	articleRepo  contract.IArticleRepository
	favoriteRepo contract.IFavoriteRepository
	bookmarkRepo contract.IBookmarkRepository
	ratingRepo   contract.IRatingRepository
	reader       *ArticleReader
	tx           contract.ITransactor
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewEngagementUsecase creates and returns a new EngagementUsecase instance.
func NewEngagementUsecase(
	articleRepo contract.IArticleRepository,
	favoriteRepo contract.IFavoriteRepository,
	bookmarkRepo contract.IBookmarkRepository,
	ratingRepo contract.IRatingRepository,
	reader *ArticleReader,
	tx contract.ITransactor,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *EngagementUsecase {
	return &EngagementUsecase{
		articleRepo:  articleRepo,
		favoriteRepo: favoriteRepo,
		bookmarkRepo: bookmarkRepo,
		ratingRepo:   ratingRepo,
		reader:       reader,
		tx:           tx,
		uuidgen:      uuidgen,
		logger:       logger,
	}
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUsecase)(nil)

// FavoriteArticle records the favorite and bumps the article counter in one transaction.
func (u *EngagementUsecase) FavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error) {
	article, err := u.foreignArticle(ctx, slug, userID, "favorite")
	if err != nil {
		return nil, err
	}

	err = u.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		favorite := &entity.Favorite{
			ID:        u.uuidgen.NewUUID(),
			UserID:    userID,
			ArticleID: article.ID,
			CreatedAt: time.Now(),
		}
		if err := u.favoriteRepo.AddFavorite(txCtx, favorite); err != nil {
			if errors.Is(err, contract.ErrDuplicate) {
				return fmt.Errorf("%w: article is already favorited", contract.ErrBadRequest)
			}
			return err
		}
		return u.articleRepo.IncrementFavorites(txCtx, article.ID)
	})
	if err != nil {
		return nil, u.wrapFavoriteErr(err, "favorite")
	}
	return u.refreshed(ctx, slug, article.ID)
}

// UnfavoriteArticle removes the favorite and decrements the counter in one transaction.
func (u *EngagementUsecase) UnfavoriteArticle(ctx context.Context, slug, userID string) (*entity.ArticleDetail, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	err = u.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := u.favoriteRepo.RemoveFavorite(txCtx, userID, article.ID); err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return fmt.Errorf("%w: article is not favorited", contract.ErrBadRequest)
			}
			return err
		}
		return u.articleRepo.DecrementFavorites(txCtx, article.ID)
	})
	if err != nil {
		return nil, u.wrapFavoriteErr(err, "unfavorite")
	}
	return u.refreshed(ctx, slug, article.ID)
}

func (u *EngagementUsecase) wrapFavoriteErr(err error, op string) error {
	if errors.Is(err, contract.ErrBadRequest) {
		return err
	}
	u.logger.Errorf("failed to %s article: %v", op, err)
	return fmt.Errorf("failed to %s article: %w", op, err)
}

func (u *EngagementUsecase) refreshed(ctx context.Context, slug, articleID string) (*entity.ArticleDetail, error) {
	u.reader.Invalidate(ctx, slug)
	article, err := u.reader.Fresh(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return u.reader.Detail(ctx, article)
}

// BookmarkArticle saves a snapshot reference to the article for the user.
func (u *EngagementUsecase) BookmarkArticle(ctx context.Context, slug, userID string) (*entity.Bookmark, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	bookmark := &entity.Bookmark{
		ID:            u.uuidgen.NewUUID(),
		UserID:        userID,
		ArticleID:     article.ID,
		ArticleSlug:   article.Slug,
		ArticleTitle:  article.Title,
		ArticleAuthor: article.AuthorUsername,
		Description:   article.Description,
		BookmarkedAt:  time.Now(),
	}
	if err := u.bookmarkRepo.CreateBookmark(ctx, bookmark); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, fmt.Errorf("%w: article is already bookmarked", contract.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to bookmark article: %w", err)
	}
	return bookmark, nil
}

func (u *EngagementUsecase) RemoveBookmark(ctx context.Context, slug, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := u.bookmarkRepo.DeleteBookmark(ctx, userID, article.ID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return fmt.Errorf("%w: bookmark does not exist", contract.ErrNotFound)
		}
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

func (u *EngagementUsecase) ListBookmarks(ctx context.Context, userID string) ([]*entity.Bookmark, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	bookmarks, err := u.bookmarkRepo.ListBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// RateArticle stores the user's score, rounded to two decimals, and returns the new summary.
func (u *EngagementUsecase) RateArticle(ctx context.Context, slug, userID string, score float64) (*entity.Rating, entity.RatingSummary, error) {
	if math.IsNaN(score) || score < entity.MinRatingScore || score > entity.MaxRatingScore {
		return nil, entity.RatingSummary{}, fmt.Errorf("%w: rating must be between %.0f and %.0f", contract.ErrInvalidValue, entity.MinRatingScore, entity.MaxRatingScore)
	}
	article, err := u.foreignArticle(ctx, slug, userID, "rate")
	if err != nil {
		return nil, entity.RatingSummary{}, err
	}

	rating, err := u.ratingRepo.UpsertRating(ctx, &entity.Rating{
		ID:        u.uuidgen.NewUUID(),
		ArticleID: article.ID,
		AuthorID:  userID,
		Score:     math.Round(score*100) / 100,
		RatedOn:   time.Now(),
	})
	if err != nil {
		return nil, entity.RatingSummary{}, fmt.Errorf("failed to rate article: %w", err)
	}
	summary, err := u.ratingRepo.GetRatingSummary(ctx, article.ID)
	if err != nil {
		return nil, entity.RatingSummary{}, fmt.Errorf("failed to summarize ratings: %w", err)
	}
	return rating, summary, nil
}

// foreignArticle loads the article and rejects actions by its own author.
func (u *EngagementUsecase) foreignArticle(ctx context.Context, slug, userID, verb string) (*entity.Article, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.AuthorID == userID {
		return nil, fmt.Errorf("%w: can not %s own article", contract.ErrBadRequest, verb)
	}
	return article, nil
}
