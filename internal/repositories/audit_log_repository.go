package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/query"

	"gorm.io/gorm"
)

// AuditLogRepository stores the audit trail of resource mutations
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if entry == nil {
		return errors.New("audit entry is nil")
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert audit entry for %s/%s: %w", entry.Resource, entry.ResourceID, err)
	}
	return nil
}

// GetByResource returns the trail of one record, newest first
func (r *AuditLogRepository) GetByResource(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("resource = ? AND resource_id = ?", resource, resourceID)
	}, offset, limit)
}

// GetByActor returns the mutations one user performed, newest first
func (r *AuditLogRepository) GetByActor(ctx context.Context, roqUserID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("roq_user_id = ?", roqUserID)
	}, offset, limit)
}

// find pages with the same bounds as resource lists
func (r *AuditLogRepository) find(ctx context.Context, filter func(*gorm.DB) *gorm.DB, offset, limit int) ([]*models.AuditLog, int64, error) {
	switch {
	case limit <= 0:
		limit = query.DefaultLimit
	case limit > query.MaxLimit:
		limit = query.MaxLimit
	}
	offset = max(offset, 0)

	base := r.db.WithContext(ctx).Model(&models.AuditLog{}).Scopes(filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	entries := make([]*models.AuditLog, 0, limit)
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, total, nil
}

// DeleteOlderThan prunes entries created before now minus age
func (r *AuditLogRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("prune audit entries before %s: %w", cutoff.Format(time.RFC3339), result.Error)
	}
	return result.RowsAffected, nil
}
