package external_services

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// BreakerSender stops calling a failing notification backend until it recovers.
type BreakerSender struct {
	next contract.INotificationSender
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// BreakerSettings tunes when the breaker opens and how long it stays open.
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{Name: "smtp", ConsecutiveFailures: 5, OpenTimeout: time.Minute}
}

func NewBreakerSender(next contract.INotificationSender, s BreakerSettings, logger usecasecontract.IAppLogger) *BreakerSender {
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("circuit breaker %s: %s -> %s", name, from, to)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
	return &BreakerSender{next: next, cb: cb}
}

var _ contract.INotificationSender = (*BreakerSender)(nil)

// Send forwards to the wrapped sender, or fails fast with gobreaker.ErrOpenState.
func (b *BreakerSender) Send(ctx context.Context, n entity.Notification) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Send(ctx, n)
	})
	return err
}

// State reports the current breaker state.
func (b *BreakerSender) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
