package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/schema"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// EntityPtr constrains PT to *T implementing models.Entity.
type EntityPtr[T any] interface {
	*T
	models.Entity
}

// resourceRepository implements ResourceRepositoryInterface for one entity type
type resourceRepository[T any, PT EntityPtr[T]] struct {
	db     *gorm.DB
	schema *schema.Schema
}

// NewResourceRepository creates the repository for entity T, for example
// NewResourceRepository[models.BankAccount](db).
func NewResourceRepository[T any, PT EntityPtr[T]](db *gorm.DB) ResourceRepositoryInterface {
	var zero T
	return &resourceRepository[T, PT]{
		db:     db,
		schema: schema.MustLookup(PT(&zero).EntityName()),
	}
}

func (r *resourceRepository[T, PT]) Entity() string {
	return r.schema.Entity
}

func (r *resourceRepository[T, PT]) NewEntity() models.Entity {
	return PT(new(T))
}

func (r *resourceRepository[T, PT]) FindMany(ctx context.Context, q query.Query) ([]models.Entity, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(PT(new(T))).Scopes(filterScope(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s records: %w", r.Entity(), err)
	}

	var rows []T
	err := r.db.WithContext(ctx).
		Scopes(filterScope(q), orderScope(q), relationScope(q, r.schema), pageScope(q)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s records: %w", r.Entity(), err)
	}

	entities := make([]models.Entity, len(rows))
	for i := range rows {
		entities[i] = PT(&rows[i])
	}
	return entities, total, nil
}

func (r *resourceRepository[T, PT]) FindFirst(ctx context.Context, q query.Query) (models.Entity, error) {
	var row T
	err := r.db.WithContext(ctx).
		Scopes(filterScope(q), orderScope(q), relationScope(q, r.schema)).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get %s record: %w", r.Entity(), err)
	}
	return PT(&row), nil
}

func (r *resourceRepository[T, PT]) Create(ctx context.Context, entity models.Entity) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create %s record: %w", r.Entity(), err)
	}
	return nil
}

// Update writes only the given columns. created_at is never part of the update.
func (r *resourceRepository[T, PT]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Entity, error) {
	var row T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&row).Error; err != nil {
			return err
		}

		if err := models.Assign(PT(&row), fields); err != nil {
			return err
		}

		columns := make([]string, 0, len(fields)+1)
		for name := range fields {
			columns = append(columns, name)
		}
		sort.Strings(columns)
		columns = append(columns, "updated_at")

		return tx.Model(PT(&row)).Select(columns).Updates(PT(&row)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update %s record: %w", r.Entity(), err)
	}
	return PT(&row), nil
}

func (r *resourceRepository[T, PT]) Delete(ctx context.Context, id uuid.UUID) (models.Entity, error) {
	var row T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&row).Error; err != nil {
			return err
		}
		return tx.Delete(PT(&row)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to delete %s record: %w", r.Entity(), err)
	}
	return PT(&row), nil
}
