package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audited actions. They match the mutating Operation values.
const (
	AuditActionCreate = string(OperationCreate)
	AuditActionUpdate = string(OperationUpdate)
	AuditActionDelete = string(OperationDelete)
)

// AuditLog records one successful resource mutation and who performed it.
type AuditLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RoqUserID     string    `gorm:"type:varchar(255);index" json:"roq_user_id,omitempty"`
	TenantID      string    `gorm:"type:varchar(255);index" json:"tenant_id,omitempty"`
	Action        string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource      string    `gorm:"type:varchar(100);not null;index" json:"resource"`
	ResourceID    string    `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	TraceID       string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	ChangedFields FieldList `gorm:"type:text" json:"changed_fields,omitempty"`
	CreatedAt     time.Time `gorm:"not null;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (al *AuditLog) BeforeCreate(*gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (al *AuditLog) String() string {
	actor := al.RoqUserID
	if actor == "" {
		actor = "anonymous"
	}
	return fmt.Sprintf("%s %s %s/%s by %s@%s", al.CreatedAt.Format(time.RFC3339), al.Action,
		al.Resource, al.ResourceID, actor, al.TenantID)
}

// FieldList is a list of attribute names stored as a JSON array in a text column.
type FieldList []string

func (f FieldList) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (f *FieldList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FieldList", value)
	}
	if len(raw) == 0 {
		*f = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(f))
}
