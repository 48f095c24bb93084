package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeFundTransfer    = "FUND_TRANSFER"
	TransactionTypeMortgagePayment = "MORTGAGE_PAYMENT"
)

// Transaction is a ledger row. Rows are written once by a transfer and never updated.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	TransactionID  string          `gorm:"uniqueIndex;size:32" json:"transaction_id"`
	AccountID      uint            `gorm:"index" json:"account_id"`       // Source
	PayeeAccountID uint            `gorm:"index" json:"payee_account_id"` // Destination
	Amount         decimal.Decimal `gorm:"type:numeric(18,2)" json:"amount"`
	Remarks        string          `json:"remarks"`
	Type           string          `gorm:"column:transaction_type;size:32" json:"transaction_type"`
	Date           time.Time       `gorm:"column:transaction_date;index" json:"transaction_date"`
}

// Counterpart returns the account on the other side of the row from accountID.
func (t *Transaction) Counterpart(accountID uint) uint {
	if t.AccountID == accountID {
		return t.PayeeAccountID
	}
	return t.AccountID
}
