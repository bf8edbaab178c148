package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used for notifications.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes events to one topic keyed by record id, so all events of
// a record land on the same partition.
type KafkaNotifier struct {
	writer MessageWriter
}

// Notify writes one message at a time and each is flushed without waiting for a batch.
const (
	kafkaBatchTimeout = 5 * time.Millisecond
	kafkaWriteTimeout = 5 * time.Second
)

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: newKafkaWriter(brokers, topic)}
}

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    1,
		BatchTimeout: kafkaBatchTimeout,
		WriteTimeout: kafkaWriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event Event) error {
	data, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Topic())},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
