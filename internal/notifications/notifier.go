// Package notifications publishes resource change events to a message bus.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dipadubank/internal/config"
	"dipadubank/internal/models"

	"github.com/google/uuid"
)

const (
	DriverNone     = "none"
	DriverLog      = "log"
	DriverNATS     = "nats"
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
)

// Event describes one completed (or, for deletes, imminent) change to a record.
type Event struct {
	Entity     string           `json:"entity"`
	Operation  models.Operation `json:"operation"`
	RecordID   uuid.UUID        `json:"record_id"`
	Identity   models.Identity  `json:"identity"`
	TraceID    string           `json:"trace_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewEvent builds an event from the request context.
func NewEvent(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID) Event {
	identity, _ := models.IdentityFromContext(ctx)
	return Event{
		Entity:     entity,
		Operation:  op,
		RecordID:   recordID,
		Identity:   identity,
		TraceID:    models.TraceIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
}

// Topic is the dotted "<entity>.<operation>" name used as subject suffix and routing key.
func (e Event) Topic() string {
	return fmt.Sprintf("%s.%s", e.Entity, e.Operation)
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
	Close() error
}

// New builds the notifier selected by cfg.Driver.
func New(cfg config.NotificationConfig, logger *slog.Logger) (Notifier, error) {
	switch cfg.Driver {
	case DriverNone, "":
		return NoopNotifier{}, nil
	case DriverLog:
		return NewLogNotifier(logger), nil
	case DriverNATS:
		return NewNATSNotifier(cfg.NATSURL, cfg.SubjectPrefix)
	case DriverKafka:
		return NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case DriverRabbitMQ:
		return NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.Exchange)
	default:
		return nil, fmt.Errorf("unsupported notification driver: %s", cfg.Driver)
	}
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Event) error { return nil }
func (NoopNotifier) Close() error                        { return nil }

// LogNotifier writes events to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) error {
	n.logger.InfoContext(ctx, "resource notification",
		slog.String("event_type", "resource_notification"),
		slog.String("entity", event.Entity),
		slog.String("operation", string(event.Operation)),
		slog.String("record_id", event.RecordID.String()),
		slog.String("roq_user_id", event.Identity.RoqUserID),
		slog.String("tenant_id", event.Identity.TenantID),
		slog.String("trace_id", event.TraceID),
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
