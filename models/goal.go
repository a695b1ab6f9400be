package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount starts at zero and only ever
// grows through add-savings; it may exceed TargetAmount.
type Goal struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	Name          string          `json:"name" db:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" db:"current_amount"`
	TargetDate    *time.Time      `json:"target_date" db:"target_date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}
