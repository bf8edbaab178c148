package services

import (
	"context"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/schema"

	"github.com/google/uuid"
)

// ResourceServiceInterface is the business layer of one resource: validation,
// persistence, notification and auditing.
type ResourceServiceInterface interface {
	Entity() string
	Schema() *schema.Schema
	List(ctx context.Context, q query.Query) (*models.Page[models.Entity], error)
	Get(ctx context.Context, q query.Query) (models.Entity, error)
	Create(ctx context.Context, payload map[string]interface{}) (models.Entity, error)
	Update(ctx context.Context, id uuid.UUID, payload map[string]interface{}, mode schema.Mode) (models.Entity, error)
	// Delete returns the record as it was before removal
	Delete(ctx context.Context, id uuid.UUID) (models.Entity, error)
}

// AuthorizationServiceInterface decides whether an identity may perform an
// operation on an entity, optionally scoped to one record.
type AuthorizationServiceInterface interface {
	HasAccess(ctx context.Context, identity models.Identity, entity string, resourceID *uuid.UUID, op models.Operation) (bool, error)
}

type SessionServiceInterface interface {
	IssueToken(identity models.Identity) (string, time.Time, error)
	ParseToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type AuditServiceInterface interface {
	RecordChange(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, fields []string) error
	GetRecordHistory(ctx context.Context, entity string, recordID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetActorActivity(ctx context.Context, roqUserID string, offset, limit int) ([]*models.AuditLog, int64, error)
	PruneOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ResourceLoggerInterface interface {
	LogResourceCreated(ctx context.Context, entity string, recordID uuid.UUID)
	LogResourceUpdated(ctx context.Context, entity string, recordID uuid.UUID, fields []string)
	LogResourceDeleted(ctx context.Context, entity string, recordID uuid.UUID)
	LogValidationFailure(ctx context.Context, entity string, op models.Operation, details []string)
	LogAuthorizationDecision(ctx context.Context, entity string, op models.Operation, resourceID *uuid.UUID, allowed bool)
	LogNotificationFailure(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, errorMsg string)
	LogAuditFailure(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
