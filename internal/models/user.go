package models

// User mirrors an identity known to the identity provider.
type User struct {
	Base
	Email     string  `gorm:"type:varchar(255);not null;index" json:"email"`
	FirstName *string `gorm:"type:varchar(255)" json:"first_name"`
	LastName  *string `gorm:"type:varchar(255)" json:"last_name"`
	RoqUserID string  `gorm:"type:varchar(255);not null;index" json:"roq_user_id"`
	TenantID  string  `gorm:"type:varchar(255);not null;index" json:"tenant_id"`

	UserProfiles []UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user_profiles,omitempty"`
}

func (*User) EntityName() string {
	return "user"
}
