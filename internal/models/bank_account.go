package models

import "github.com/shopspring/decimal"

// BankAccount is a customer's bank account record. Balances are stored, never computed.
type BankAccount struct {
	Base
	AccountBalance decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"account_balance"`
	AccountType    *string          `gorm:"type:varchar(255)" json:"account_type"`
	InterestRate   *decimal.Decimal `gorm:"type:decimal(7,4)" json:"interest_rate"`
	AccountNumber  string           `gorm:"type:varchar(255);not null;index" json:"account_number"`
	AccountStatus  *string          `gorm:"type:varchar(255)" json:"account_status"`
	AccountOwner   *string          `gorm:"type:varchar(255)" json:"account_owner"`

	TransactionHistories []TransactionHistory `gorm:"foreignKey:BankAccountID;constraint:OnDelete:SET NULL" json:"transaction_histories,omitempty"`
}

func (*BankAccount) EntityName() string {
	return "bank_account"
}
