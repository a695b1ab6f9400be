package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund is a user-defined grouping that receipts and budgets can be tagged
// with, optionally linked to one goal.
type Fund struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	GoalID    *int      `json:"goal_id" db:"goal_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FundSummary is the list row: the fund joined with its goal's amounts,
// which are nil when no goal is linked.
type FundSummary struct {
	Fund
	TargetAmount  *decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount" db:"current_amount"`
}

// FundDetail is the single-fund view with everything tagged to it.
type FundDetail struct {
	Fund
	GoalName      *string          `json:"goal_name" db:"goal_name"`
	TargetAmount  *decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount" db:"current_amount"`
	Budgets       []Budget         `json:"budgets"`
	Transactions  []Receipt        `json:"transactions"`
}
