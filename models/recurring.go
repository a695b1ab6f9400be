package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurring rule frequencies. Anything else advances monthly.
const (
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurringRule is a template that the scheduler materializes into a
// receipt each time NextDueDate comes due. NextDueDate starts at StartDate
// and is advanced only by the scheduler.
type RecurringRule struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Title       string          `json:"title" db:"title"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	Frequency   string          `json:"frequency" db:"frequency"`
	StartDate   time.Time       `json:"start_date" db:"start_date"`
	NextDueDate time.Time       `json:"next_due_date" db:"next_due_date"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
