package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CryptoWallet struct {
	Base
	WalletAddress string           `gorm:"type:varchar(255);not null;index" json:"wallet_address"`
	Currency      string           `gorm:"type:varchar(32);not null" json:"currency"`
	Balance       *decimal.Decimal `gorm:"type:decimal(30,10)" json:"balance"`
	WalletLabel   *string          `gorm:"type:varchar(255)" json:"wallet_label"`
	UserProfileID *uuid.UUID       `gorm:"type:uuid;index" json:"user_profile_id"`

	UserProfile        *UserProfile        `gorm:"foreignKey:UserProfileID;constraint:OnDelete:SET NULL" json:"user_profile,omitempty"`
	CryptoTransactions []CryptoTransaction `gorm:"foreignKey:CryptoWalletID;constraint:OnDelete:SET NULL" json:"crypto_transactions,omitempty"`
}

func (*CryptoWallet) EntityName() string {
	return "crypto_wallet"
}
