package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/repositories"

	"github.com/google/uuid"
)

// AuditService persists one audit entry per resource mutation
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidRecordID = errors.New("invalid record ID")
	ErrInvalidActor    = errors.New("invalid actor")
)

// ValidateAuditAction validates that the operation is a mutation that is audited
func ValidateAuditAction(op models.Operation) error {
	switch string(op) {
	case models.AuditActionCreate, models.AuditActionUpdate, models.AuditActionDelete:
		return nil
	default:
		return fmt.Errorf("invalid audit action: %s", op)
	}
}

// RecordChange writes the audit entry for a mutation. The actor and trace id come from ctx.
func (s *AuditService) RecordChange(ctx context.Context, entity string, op models.Operation, recordID uuid.UUID, fields []string) error {
	if err := ValidateAuditAction(op); err != nil {
		return err
	}
	if recordID == uuid.Nil {
		return ErrInvalidRecordID
	}

	identity, _ := models.IdentityFromContext(ctx)
	log := &models.AuditLog{
		RoqUserID:     identity.RoqUserID,
		TenantID:      identity.TenantID,
		Action:        string(op),
		Resource:      entity,
		ResourceID:    recordID.String(),
		TraceID:       models.TraceIDFromContext(ctx),
		ChangedFields: fields,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetRecordHistory lists the audit entries of one record, newest first
func (s *AuditService) GetRecordHistory(ctx context.Context, entity string, recordID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if recordID == uuid.Nil {
		return nil, 0, ErrInvalidRecordID
	}
	return s.repo.GetByResource(ctx, entity, recordID.String(), offset, limit)
}

func (s *AuditService) GetActorActivity(ctx context.Context, roqUserID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if roqUserID == "" {
		return nil, 0, ErrInvalidActor
	}
	return s.repo.GetByActor(ctx, roqUserID, offset, limit)
}

// PruneOlderThan deletes audit entries older than age and reports how many went
func (s *AuditService) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	if age <= 0 {
		return 0, fmt.Errorf("audit retention must be positive, got %s", age)
	}
	return s.repo.DeleteOlderThan(ctx, age)
}
