package notifications

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used for notifications.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQNotifier publishes persistent JSON messages to a topic exchange with
// routing key "<entity>.<operation>".
type RabbitMQNotifier struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
}

func NewRabbitMQNotifier(url, exchange string) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQNotifier{conn: conn, channel: ch, exchange: exchange}, nil
}

func (n *RabbitMQNotifier) Notify(ctx context.Context, event Event) error {
	body, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, event.Topic(), false, false, amqp.Publishing{
		ContentType:   "application/json",
		Body:          body,
		Timestamp:     event.OccurredAt,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: event.TraceID,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

func (n *RabbitMQNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return err
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
