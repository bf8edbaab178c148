package notifications

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher is the subset of *nats.Conn used for notifications.
type Publisher interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSNotifier publishes each event to "<prefix>.<entity>.<operation>".
type NATSNotifier struct {
	conn   Publisher
	prefix string
}

func NewNATSNotifier(url, prefix string) (*NATSNotifier, error) {
	nc, err := nats.Connect(url, nats.Name("dipadubank"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &NATSNotifier{conn: nc, prefix: prefix}, nil
}

func (n *NATSNotifier) Subject(event Event) string {
	if n.prefix == "" {
		return event.Topic()
	}
	return n.prefix + "." + event.Topic()
}

func (n *NATSNotifier) Notify(_ context.Context, event Event) error {
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := n.conn.Publish(n.Subject(event), data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

func (n *NATSNotifier) Close() error {
	return n.conn.Drain()
}
