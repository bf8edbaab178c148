package services

import (
	"context"
	"log/slog"
	"time"

	"dipadubank/internal/models"

	"github.com/google/uuid"
)

type ResourceLogger struct {
	logger *slog.Logger
}

func NewResourceLogger(logger *slog.Logger) ResourceLoggerInterface {
	return &ResourceLogger{
		logger: logger,
	}
}

func (rl *ResourceLogger) LogResourceCreated(ctx context.Context, entity string, recordID uuid.UUID) {
	rl.logger.InfoContext(ctx, "resource created",
		slog.String("event_type", "resource_created"),
		slog.String("entity", entity),
		slog.String("resource_id", recordID.String()),
		slog.Time("timestamp", time.Now()),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogResourceUpdated(ctx context.Context, entity string, recordID uuid.UUID, fields []string) {
	rl.logger.InfoContext(ctx, "resource updated",
		slog.String("event_type", "resource_updated"),
		slog.String("entity", entity),
		slog.String("resource_id", recordID.String()),
		slog.Any("fields", fields),
		slog.Time("timestamp", time.Now()),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogResourceDeleted(ctx context.Context, entity string, recordID uuid.UUID) {
	rl.logger.InfoContext(ctx, "resource deleted",
		slog.String("event_type", "resource_deleted"),
		slog.String("entity", entity),
		slog.String("resource_id", recordID.String()),
		slog.Time("timestamp", time.Now()),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogValidationFailure(ctx context.Context, entity string, op models.Operation, details []string) {
	rl.logger.WarnContext(ctx, "resource validation failed",
		slog.String("event_type", "validation_failed"),
		slog.String("entity", entity),
		slog.String("operation", string(op)),
		slog.Any("details", details),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogAuthorizationDecision(ctx context.Context, entity string, op models.Operation, resourceID *uuid.UUID, allowed bool) {
	level := slog.LevelDebug
	if !allowed {
		level = slog.LevelWarn
	}

	id := ""
	if resourceID != nil {
		id = resourceID.String()
	}

	rl.logger.Log(ctx, level, "authorization decision",
		slog.String("event_type", "authorization_decision"),
		slog.String("entity", entity),
		slog.String("operation", string(op)),
		slog.String("resource_id", id),
		slog.Bool("allowed", allowed),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogNotificationFailure(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, errorMsg string) {
	rl.logger.ErrorContext(ctx, "resource notification failed",
		slog.String("event_type", "notification_failed"),
		slog.String("entity", entity),
		slog.String("operation", string(op)),
		slog.String("resource_id", recordID.String()),
		slog.String("error", errorMsg),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogAuditFailure(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, errorMsg string) {
	rl.logger.ErrorContext(ctx, "audit log write failed",
		slog.String("event_type", "audit_failed"),
		slog.String("entity", entity),
		slog.String("operation", string(op)),
		slog.String("resource_id", recordID.String()),
		slog.String("error", errorMsg),
		requestAttrs(ctx),
	)
}

func (rl *ResourceLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	rl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

// requestAttrs groups the trace id and caller identity of ctx.
func requestAttrs(ctx context.Context) slog.Attr {
	identity, _ := models.IdentityFromContext(ctx)
	return slog.Group("request",
		slog.String("trace_id", models.TraceIDFromContext(ctx)),
		slog.String("roq_user_id", identity.RoqUserID),
		slog.String("tenant_id", identity.TenantID),
	)
}
