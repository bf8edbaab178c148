package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"dipadubank/internal/models"
	"dipadubank/internal/notifications"
	"dipadubank/internal/query"
	"dipadubank/internal/repositories"
	"dipadubank/internal/schema"

	"github.com/google/uuid"
)

// ResourceService runs validate -> persist -> notify for one entity. Notification
// and audit failures are logged and counted but never fail the operation.
type ResourceService struct {
	repo     repositories.ResourceRepositoryInterface
	schema   *schema.Schema
	notifier notifications.Notifier
	audit    AuditServiceInterface
	logger   ResourceLoggerInterface
	metrics  MetricsRecorderInterface
}

func NewResourceService(
	repo repositories.ResourceRepositoryInterface,
	notifier notifications.Notifier,
	audit AuditServiceInterface,
	logger ResourceLoggerInterface,
	metrics MetricsRecorderInterface,
) ResourceServiceInterface {
	return &ResourceService{
		repo:     repo,
		schema:   schema.MustLookup(repo.Entity()),
		notifier: notifier,
		audit:    audit,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *ResourceService) Entity() string {
	return s.schema.Entity
}

func (s *ResourceService) Schema() *schema.Schema {
	return s.schema
}

func (s *ResourceService) List(ctx context.Context, q query.Query) (page *models.Page[models.Entity], err error) {
	defer s.observe(models.OperationRead, time.Now(), &err)

	rows, total, err := s.repo.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}

	return &models.Page[models.Entity]{
		Data:       rows,
		TotalCount: total,
		Offset:     q.Offset,
		Limit:      q.Limit,
	}, nil
}

func (s *ResourceService) Get(ctx context.Context, q query.Query) (entity models.Entity, err error) {
	defer s.observe(models.OperationRead, time.Now(), &err)

	return s.repo.FindFirst(ctx, q)
}

func (s *ResourceService) Create(ctx context.Context, payload map[string]interface{}) (entity models.Entity, err error) {
	defer s.observe(models.OperationCreate, time.Now(), &err)

	fields, err := s.validate(ctx, models.OperationCreate, payload, schema.Full)
	if err != nil {
		return nil, err
	}

	entity = s.repo.NewEntity()
	if err := models.Assign(entity, fields); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.LogResourceCreated(ctx, s.Entity(), entity.GetID())
	s.notify(ctx, models.OperationCreate, entity.GetID())
	s.recordAudit(ctx, models.OperationCreate, entity.GetID(), fieldNames(fields))
	return entity, nil
}

func (s *ResourceService) Update(ctx context.Context, id uuid.UUID, payload map[string]interface{}, mode schema.Mode) (entity models.Entity, err error) {
	defer s.observe(models.OperationUpdate, time.Now(), &err)

	fields, err := s.validate(ctx, models.OperationUpdate, payload, mode)
	if err != nil {
		return nil, err
	}

	entity, err = s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	names := fieldNames(fields)
	s.logger.LogResourceUpdated(ctx, s.Entity(), id, names)
	s.notify(ctx, models.OperationUpdate, id)
	s.recordAudit(ctx, models.OperationUpdate, id, names)
	return entity, nil
}

// Delete notifies with the record id before removing the record, so
// subscribers can still resolve it.
func (s *ResourceService) Delete(ctx context.Context, id uuid.UUID) (entity models.Entity, err error) {
	defer s.observe(models.OperationDelete, time.Now(), &err)

	s.notify(ctx, models.OperationDelete, id)

	entity, err = s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.LogResourceDeleted(ctx, s.Entity(), id)
	s.recordAudit(ctx, models.OperationDelete, id, nil)
	return entity, nil
}

func (s *ResourceService) validate(ctx context.Context, op models.Operation, payload map[string]interface{}, mode schema.Mode) (map[string]interface{}, error) {
	fields, err := s.schema.Validate(payload, mode)
	if err != nil {
		var validationErr *schema.ValidationError
		if errors.As(err, &validationErr) {
			s.logger.LogValidationFailure(ctx, s.Entity(), op, validationErr.Details())
		}
		return nil, err
	}
	return fields, nil
}

func (s *ResourceService) notify(ctx context.Context, op models.Operation, id uuid.UUID) {
	status := "success"
	if err := s.notifier.Notify(ctx, notifications.NewEvent(ctx, s.Entity(), op, id)); err != nil {
		status = "failed"
		s.logger.LogNotificationFailure(ctx, s.Entity(), op, id, err.Error())
	}
	s.metrics.IncrementCounter(MetricNotification, map[string]string{
		"entity": s.Entity(),
		"status": status,
	})
}

func (s *ResourceService) recordAudit(ctx context.Context, op models.Operation, id uuid.UUID, fields []string) {
	if err := s.audit.RecordChange(ctx, s.Entity(), op, id, fields); err != nil {
		s.logger.LogAuditFailure(ctx, s.Entity(), op, id, err.Error())
	}
}

func (s *ResourceService) observe(op models.Operation, start time.Time, errp *error) {
	tags := map[string]string{
		"entity":    s.Entity(),
		"operation": string(op),
		"status":    outcome(*errp),
	}
	s.metrics.IncrementCounter(MetricResourceRequest, tags)
	s.metrics.RecordProcessingTime(MetricResourceDuration, time.Since(start), tags)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, schema.ErrValidation):
		return "invalid"
	case errors.Is(err, repositories.ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func fieldNames(fields map[string]interface{}) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
