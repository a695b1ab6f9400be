package scheduler

import (
	"time"

	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// NextDueDate advances a due date by one calendar unit for the rule's
// frequency. Unknown frequencies advance monthly. When the target month is
// shorter than the current day-of-month, the result clamps to the last day
// of the target month: Jan 31 + 1 month = Feb 29 in a leap year, and
// Feb 29 + 1 year = Feb 28.
func NextDueDate(current time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyYearly:
		return addClamped(current, 1, 0)
	case models.FrequencyMonthly:
		return addClamped(current, 0, 1)
	default:
		return addClamped(current, 0, 1)
	}
}

func addClamped(t time.Time, years, months int) time.Time {
	year, month, day := t.Date()
	month += time.Month(months)
	year += years

	// Normalize month overflow before clamping the day.
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	if last := daysInMonth(year, month); day > last {
		day = last
	}

	h, m, s := t.Clock()
	return time.Date(year, month, day, h, m, s, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
