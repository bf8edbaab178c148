package models

// Company is the tenant organisation.
type Company struct {
	Base
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	TenantID    *string `gorm:"type:varchar(255);index" json:"tenant_id"`
}

func (*Company) EntityName() string {
	return "company"
}
