package models

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Balances and amounts are exchanged as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every persisted resource.
type Entity interface {
	EntityName() string
	GetID() uuid.UUID
}

// Count is the reserved "_count" aggregate. It is always serialized as an empty object.
type Count struct{}

// Base carries the system managed columns shared by all resources.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	Count     Count     `gorm:"-" json:"_count"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b Base) GetID() uuid.UUID {
	return b.ID
}

// Operation is the access operation derived from an HTTP method.
type Operation string

const (
	OperationRead   Operation = "read"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// OperationFromMethod maps an HTTP method to an operation. The second return is false for methods
// no operation exists for.
func OperationFromMethod(method string) (Operation, bool) {
	switch method {
	case http.MethodGet:
		return OperationRead, true
	case http.MethodPost:
		return OperationCreate, true
	case http.MethodPut, http.MethodPatch:
		return OperationUpdate, true
	case http.MethodDelete:
		return OperationDelete, true
	default:
		return "", false
	}
}

// Page is one page of a collection listing.
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"totalCount"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
}
