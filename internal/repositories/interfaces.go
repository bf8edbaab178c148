package repositories

import (
	"context"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/query"

	"github.com/google/uuid"
)

// ResourceRepositoryInterface is the persistence contract shared by every resource
type ResourceRepositoryInterface interface {
	Entity() string
	// NewEntity returns an empty record of the repository's entity type
	NewEntity() models.Entity
	FindMany(ctx context.Context, q query.Query) ([]models.Entity, int64, error)
	FindFirst(ctx context.Context, q query.Query) (models.Entity, error)
	Create(ctx context.Context, entity models.Entity) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Entity, error)
	// Delete removes the record and returns its state before removal
	Delete(ctx context.Context, id uuid.UUID) (models.Entity, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByResource(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByActor(ctx context.Context, roqUserID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
