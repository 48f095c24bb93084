package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeMortgage AccountType = "MORTGAGE"
)

type Account struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"index" json:"user_id"`
	Type           AccountType     `gorm:"column:account_type;size:16;index" json:"account_type"`
	Number         string          `gorm:"column:account_number;uniqueIndex;size:16" json:"account_number"` // 16 digits, immutable
	MinimumBalance decimal.Decimal `gorm:"type:numeric(18,2)" json:"minimum_balance"`
	Balance        decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
}
