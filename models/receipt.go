package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a single recorded transaction.
type Receipt struct {
	ID              int             `json:"id" db:"id"`
	UserID          int             `json:"user_id" db:"user_id"`
	Title           string          `json:"title" db:"title"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Category        string          `json:"category" db:"category"`
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"`
	FundID          *int            `json:"fund_id" db:"fund_id"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}
