package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReaction(t *testing.T) {
	before := testutil.ToFloat64(ReactionsTotal.WithLabelValues("article", "created"))
	ObserveReaction("article", "created")
	ObserveReaction("article", "created")
	assert.Equal(t, before+2, testutil.ToFloat64(ReactionsTotal.WithLabelValues("article", "created")))
}

func TestObserveNotification(t *testing.T) {
	okBefore := testutil.ToFloat64(NotificationsTotal.WithLabelValues("smtp", "ok"))
	errBefore := testutil.ToFloat64(NotificationsTotal.WithLabelValues("smtp", "error"))

	ObserveNotification("smtp", nil)
	ObserveNotification("smtp", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(NotificationsTotal.WithLabelValues("smtp", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(NotificationsTotal.WithLabelValues("smtp", "error")))
}

func TestCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("miss"))
	errs := testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("error"))

	IncCacheHit(0.001)
	IncCacheMiss(0.002)
	IncCacheError()

	assert.Equal(t, hits+1, testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+1, testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("miss")))
	assert.Equal(t, errs+1, testutil.ToFloat64(ArticleCacheTotal.WithLabelValues("error")))
}
