package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// errMalformed marks deliveries that can never succeed.
var errMalformed = errors.New("malformed notification")

const defaultUnavailableBackoff = 10 * time.Second

// NotificationWorker consumes queued notifications and delivers them through sender.
// It is run as a suture service.
type NotificationWorker struct {
	src     ConsumerSource
	queue   string
	sender  contract.INotificationSender
	logger  usecasecontract.IAppLogger
	backoff time.Duration
}

type WorkerOption func(*NotificationWorker)

// WithUnavailableBackoff sets how long a delivery is held before being requeued
// while the sender's circuit breaker rejects calls.
func WithUnavailableBackoff(d time.Duration) WorkerOption {
	return func(w *NotificationWorker) { w.backoff = d }
}

func NewNotificationWorker(src ConsumerSource, queue string, sender contract.INotificationSender, logger usecasecontract.IAppLogger, opts ...WorkerOption) *NotificationWorker {
	w := &NotificationWorker{src: src, queue: queue, sender: sender, logger: logger, backoff: defaultUnavailableBackoff}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serve resolves a fresh consumer on every start, so a restart after a broker
// disconnect reconnects.
func (w *NotificationWorker) Serve(ctx context.Context) error {
	consumer, err := w.src.Consumer()
	if err != nil {
		return fmt.Errorf("failed to open notification channel: %w", err)
	}
	msgs, err := consumer.Consume(w.queue, "inkwell-notification-worker", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", w.queue, err)
	}
	w.logger.Infof("notification worker consuming %s", w.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("notification queue %s closed", w.queue)
			}
			w.handle(ctx, msg)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}

func (w *NotificationWorker) handle(ctx context.Context, msg amqp.Delivery) {
	err := w.processDelivery(ctx, msg.Body)
	switch {
	case err == nil:
		if ackErr := msg.Ack(false); ackErr != nil {
			w.logger.Errorf("failed to ack notification: %v", ackErr)
		}
	case errors.Is(err, errMalformed):
		w.logger.Errorf("dropping notification: %v", err)
		_ = msg.Nack(false, false)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		w.logger.Warnf("notification sender unavailable, requeueing in %s: %v", w.backoff, err)
		w.wait(ctx)
		_ = msg.Nack(false, true)
	default:
		w.logger.Warnf("notification delivery failed, requeueing: %v", err)
		_ = msg.Nack(false, true)
	}
}

func (w *NotificationWorker) wait(ctx context.Context) {
	t := time.NewTimer(w.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (w *NotificationWorker) processDelivery(ctx context.Context, body []byte) error {
	var n entity.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if n.To == "" {
		return fmt.Errorf("%w: no recipient", errMalformed)
	}
	return w.sender.Send(ctx, n)
}

func (w *NotificationWorker) String() string {
	return "notification-worker"
}
