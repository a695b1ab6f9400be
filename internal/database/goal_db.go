package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
	"github.com/shopspring/decimal"
)

// ListGoals returns the user's goals, nearest target date first.
func ListGoals(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, target_date, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY target_date ASC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount,
			&g.CurrentAmount, &g.TargetDate, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// CreateGoal inserts a goal. current_amount starts at the column default 0.
func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount, target_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, current_amount, created_at`

	err := pool.QueryRow(ctx, query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.TargetDate,
	).Scan(&goal.ID, &goal.CurrentAmount, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// AddSavings atomically increments a goal's saved amount and returns the
// updated row. The amount is never clamped at the target.
func AddSavings(ctx context.Context, pool *pgxpool.Pool, userID, goalID int, amount decimal.Decimal) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, target_amount, current_amount, target_date, created_at`

	goal := &models.Goal{}
	err := pool.QueryRow(ctx, query, amount, goalID, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("add savings: %w", err)
	}
	return goal, nil
}
