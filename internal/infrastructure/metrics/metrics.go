package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReactionsTotal counts reaction submissions by target type and outcome.
	ReactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "reactions_total",
		Help:      "Reaction submissions by target type and resulting action.",
	}, []string{"target_type", "action"})

	ArticleCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "article_cache_total",
		Help:      "Article cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	ArticleCacheDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "inkwell",
		Name:      "article_cache_duration_seconds",
		Help:      "Latency of article cache lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "notifications_total",
		Help:      "Notification deliveries by transport and result.",
	}, []string{"transport", "result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "inkwell",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "inkwell",
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open).",
	}, []string{"name"})
)

func ObserveReaction(targetType, action string) {
	ReactionsTotal.WithLabelValues(targetType, action).Inc()
}

func IncCacheHit(seconds float64) {
	ArticleCacheTotal.WithLabelValues("hit").Inc()
	ArticleCacheDuration.WithLabelValues("hit").Observe(seconds)
}

func IncCacheMiss(seconds float64) {
	ArticleCacheTotal.WithLabelValues("miss").Inc()
	ArticleCacheDuration.WithLabelValues("miss").Observe(seconds)
}

func IncCacheError() {
	ArticleCacheTotal.WithLabelValues("error").Inc()
}

func ObserveNotification(transport string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	NotificationsTotal.WithLabelValues(transport, result).Inc()
}
