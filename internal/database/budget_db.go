package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// CreateBudget inserts a budget. The unique (user_id, category, month,
// year) key is enforced by the store; a violation surfaces as ErrDuplicate.
func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, amount, month, year, fund_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		budget.UserID,
		budget.Category,
		budget.Amount,
		budget.Month,
		budget.Year,
		budget.FundID,
	).Scan(&budget.ID, &budget.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// ListBudgetsWithSpending returns the user's budgets for one month, each
// with the sum of the user's receipts in that budget's category. The sum
// is recomputed on every call, never stored.
func ListBudgetsWithSpending(ctx context.Context, pool *pgxpool.Pool, userID, month, year int) ([]models.BudgetWithSpending, error) {
	query := `
		SELECT b.id, b.user_id, b.category, b.amount, b.month, b.year, b.fund_id, b.created_at,
		       COALESCE((
		           SELECT SUM(r.amount)
		           FROM receipts r
		           WHERE r.user_id = b.user_id AND r.category = b.category
		       ), 0) AS current_spending
		FROM budgets b
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
		ORDER BY b.category ASC`

	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("select budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.BudgetWithSpending{}
	for rows.Next() {
		var b models.BudgetWithSpending
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Month,
			&b.Year, &b.FundID, &b.CreatedAt, &b.CurrentSpending); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// DeleteBudget removes a budget owned by the user.
func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int) error {
	result, err := pool.Exec(ctx,
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
