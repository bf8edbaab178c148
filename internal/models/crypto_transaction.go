package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CryptoTransaction struct {
	Base
	Amount            decimal.Decimal `gorm:"type:decimal(30,10);not null" json:"amount"`
	Currency          string          `gorm:"type:varchar(32);not null" json:"currency"`
	TransactionType   *string         `gorm:"type:varchar(255)" json:"transaction_type"`
	TransactionStatus *string         `gorm:"type:varchar(255)" json:"transaction_status"`
	TxHash            *string         `gorm:"type:varchar(255);index" json:"tx_hash"`
	CryptoWalletID    *uuid.UUID      `gorm:"type:uuid;index" json:"crypto_wallet_id"`

	CryptoWallet *CryptoWallet `gorm:"foreignKey:CryptoWalletID;constraint:OnDelete:SET NULL" json:"crypto_wallet,omitempty"`
}

func (*CryptoTransaction) EntityName() string {
	return "crypto_transaction"
}
