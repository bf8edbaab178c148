package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionHistory struct {
	Base
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	Description     *string         `gorm:"type:text" json:"description"`
	BankAccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"bank_account_id"`

	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID;constraint:OnDelete:SET NULL" json:"bank_account,omitempty"`
}

func (*TransactionHistory) EntityName() string {
	return "transaction_history"
}
