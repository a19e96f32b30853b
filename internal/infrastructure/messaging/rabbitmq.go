package messaging

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp.Channel the queue sender needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Consumer is the part of *amqp.Channel the notification worker needs.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// PublisherSource hands out a live publisher; callers resolve it per publish.
type PublisherSource interface {
	Publisher() (Publisher, error)
}

// ConsumerSource hands out a live consumer; the worker resolves it on every start.
type ConsumerSource interface {
	Consumer() (Consumer, error)
}

// RabbitMQClient owns one connection and one channel bound to a durable queue.
// A closed connection or channel is redialed on the next access.
type RabbitMQClient struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var (
	_ PublisherSource = (*RabbitMQClient)(nil)
	_ ConsumerSource  = (*RabbitMQClient)(nil)
)

// NewRabbitMQClient dials url and declares queue.
func NewRabbitMQClient(url, queue string) (*RabbitMQClient, error) {
	c := &RabbitMQClient{url: url, queue: queue}
	if _, err := c.Channel(); err != nil {
		return nil, err
	}
	return c, nil
}

// Channel returns the open channel, reconnecting and redeclaring the queue if
// the broker closed the previous one.
func (c *RabbitMQClient) Channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch != nil && !c.ch.IsClosed() && c.conn != nil && !c.conn.IsClosed() {
		return c.ch, nil
	}
	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		c.conn = conn
	}
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}
	// one unacked delivery at a time per worker
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}
	c.ch = ch
	return ch, nil
}

func (c *RabbitMQClient) Publisher() (Publisher, error) {
	ch, err := c.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *RabbitMQClient) Consumer() (Consumer, error) {
	ch, err := c.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *RabbitMQClient) Queue() string {
	return c.queue
}

func (c *RabbitMQClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
