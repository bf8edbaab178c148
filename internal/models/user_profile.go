package models

import "github.com/google/uuid"

type UserProfile struct {
	Base
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber *string    `gorm:"type:varchar(255)" json:"phone_number"`
	Address     *string    `gorm:"type:text" json:"address"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	User          *User          `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	CryptoWallets []CryptoWallet `gorm:"foreignKey:UserProfileID;constraint:OnDelete:SET NULL" json:"crypto_wallets,omitempty"`
}

func (*UserProfile) EntityName() string {
	return "user_profile"
}
