package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

const defaultArticleTTL = 60 * time.Minute

// ArticleCacheStore keeps article documents in redis keyed by slug.
type ArticleCacheStore struct {
	rdb       redis.Cmdable
	detailTTL time.Duration
}

func NewArticleCacheStore(rdb redis.Cmdable) *ArticleCacheStore {
	return &ArticleCacheStore{
		rdb:       rdb,
		detailTTL: defaultArticleTTL,
	}
}

var _ contract.IArticleCache = (*ArticleCacheStore)(nil)

func articleDetailKey(slug string) string { return fmt.Sprintf("article:slug:%s", slug) }

func (c *ArticleCacheStore) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, bool, error) {
	b, err := c.rdb.Get(ctx, articleDetailKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var article entity.Article
	if err := json.Unmarshal(b, &article); err != nil {
		// unreadable entries are treated as a miss and overwritten on the next set
		return nil, false, nil
	}
	return &article, true, nil
}

func (c *ArticleCacheStore) SetArticleBySlug(ctx context.Context, slug string, article *entity.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, articleDetailKey(slug), data, c.detailTTL).Err()
}

func (c *ArticleCacheStore) InvalidateArticleBySlug(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, articleDetailKey(slug)).Err()
}
