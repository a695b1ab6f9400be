package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one month. At most one budget
// may exist per (user, category, month, year); the database enforces it.
type Budget struct {
	ID        int             `json:"id" db:"id"`
	UserID    int             `json:"user_id" db:"user_id"`
	Category  string          `json:"category" db:"category"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Month     int             `json:"month" db:"month"`
	Year      int             `json:"year" db:"year"`
	FundID    *int            `json:"fund_id" db:"fund_id"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// BudgetWithSpending is the list view of a budget. CurrentSpending is the
// sum of the owner's receipts in the budget's category, recomputed on
// every read.
type BudgetWithSpending struct {
	Budget
	CurrentSpending decimal.Decimal `json:"current_spending" db:"current_spending"`
}
