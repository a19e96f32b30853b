package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/metrics"
)

// QueueSender hands notifications to the broker instead of sending them inline.
type QueueSender struct {
	src   PublisherSource
	queue string
}

func NewQueueSender(src PublisherSource, queue string) *QueueSender {
	return &QueueSender{src: src, queue: queue}
}

var _ contract.INotificationSender = (*QueueSender)(nil)

func (s *QueueSender) Send(ctx context.Context, n entity.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	pub, err := s.src.Publisher()
	if err != nil {
		metrics.ObserveNotification("amqp", err)
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	err = pub.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	metrics.ObserveNotification("amqp", err)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
