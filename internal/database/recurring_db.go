package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

const ruleColumns = `id, user_id, title, amount, category, frequency, start_date, next_due_date, created_at`

func scanRule(row interface{ Scan(...any) error }, r *models.RecurringRule) error {
	return row.Scan(&r.ID, &r.UserID, &r.Title, &r.Amount, &r.Category,
		&r.Frequency, &r.StartDate, &r.NextDueDate, &r.CreatedAt)
}

// ListRules returns the user's recurring rules, soonest due first.
func ListRules(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.RecurringRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY next_due_date ASC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select rules: %w", err)
	}
	defer rows.Close()

	rules := []models.RecurringRule{}
	for rows.Next() {
		var r models.RecurringRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// CreateRule inserts a rule with next_due_date initialized to start_date.
func CreateRule(ctx context.Context, pool *pgxpool.Pool, rule *models.RecurringRule) error {
	query := `
		INSERT INTO recurring_transactions
		    (user_id, title, amount, category, frequency, start_date, next_due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, next_due_date, created_at`

	err := pool.QueryRow(ctx, query,
		rule.UserID,
		rule.Title,
		rule.Amount,
		rule.Category,
		rule.Frequency,
		rule.StartDate,
	).Scan(&rule.ID, &rule.NextDueDate, &rule.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

// UpdateRule rewrites a rule's template fields. next_due_date is left
// alone; only the scheduler moves it.
func UpdateRule(ctx context.Context, pool *pgxpool.Pool, rule *models.RecurringRule) (*models.RecurringRule, error) {
	query := `
		UPDATE recurring_transactions
		SET title = $1, amount = $2, category = $3, frequency = $4, start_date = $5
		WHERE id = $6 AND user_id = $7
		RETURNING ` + ruleColumns

	updated := &models.RecurringRule{}
	err := scanRule(pool.QueryRow(ctx, query,
		rule.Title,
		rule.Amount,
		rule.Category,
		rule.Frequency,
		rule.StartDate,
		rule.ID,
		rule.UserID,
	), updated)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update rule: %w", err)
	}
	return updated, nil
}

// DeleteRule removes a rule owned by the user.
func DeleteRule(ctx context.Context, pool *pgxpool.Pool, userID, ruleID int) error {
	result, err := pool.Exec(ctx,
		`DELETE FROM recurring_transactions WHERE id = $1 AND user_id = $2`, ruleID, userID)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DueRules returns every rule across all users with next_due_date at or
// before now, in rule id order.
func DueRules(ctx context.Context, pool *pgxpool.Pool, now time.Time) ([]models.RecurringRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM recurring_transactions
		WHERE next_due_date <= $1
		ORDER BY id ASC`

	rows, err := pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("select due rules: %w", err)
	}
	defer rows.Close()

	rules := []models.RecurringRule{}
	for rows.Next() {
		var r models.RecurringRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scan due rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// MaterializeRule inserts the receipt for a due rule and advances its due
// date, in one transaction so a crash can never duplicate the receipt.
func MaterializeRule(ctx context.Context, pool *pgxpool.Pool, rule models.RecurringRule, nextDue time.Time) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO receipts (user_id, title, amount, category, transaction_date)
		VALUES ($1, $2, $3, $4, $5)`,
		rule.UserID, rule.Title, rule.Amount, rule.Category, rule.NextDueDate)
	if err != nil {
		return fmt.Errorf("insert materialized receipt: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE recurring_transactions SET next_due_date = $1 WHERE id = $2`,
		nextDue, rule.ID)
	if err != nil {
		return fmt.Errorf("advance due date: %w", err)
	}

	return tx.Commit(ctx)
}
