package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// CreateFund inserts a fund, optionally linked to one of the user's goals.
func CreateFund(ctx context.Context, pool *pgxpool.Pool, fund *models.Fund) error {
	query := `
		INSERT INTO funds (user_id, name, goal_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query, fund.UserID, fund.Name, fund.GoalID).
		Scan(&fund.ID, &fund.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert fund: %w", err)
	}
	return nil
}

// ListFunds returns the user's funds joined with their linked goal's
// amounts, newest first. Goal columns are nil for unlinked funds.
func ListFunds(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.FundSummary, error) {
	query := `
		SELECT f.id, f.user_id, f.name, f.goal_id, f.created_at,
		       g.target_amount, g.current_amount
		FROM funds f
		LEFT JOIN goals g ON f.goal_id = g.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select funds: %w", err)
	}
	defer rows.Close()

	funds := []models.FundSummary{}
	for rows.Next() {
		var f models.FundSummary
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.GoalID, &f.CreatedAt,
			&f.TargetAmount, &f.CurrentAmount); err != nil {
			return nil, fmt.Errorf("scan fund: %w", err)
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

// GetFundDetail loads one fund with its linked goal plus every budget and
// receipt tagged with it.
func GetFundDetail(ctx context.Context, pool *pgxpool.Pool, userID, fundID int) (*models.FundDetail, error) {
	fundQuery := `
		SELECT f.id, f.user_id, f.name, f.goal_id, f.created_at,
		       g.name AS goal_name, g.target_amount, g.current_amount
		FROM funds f
		LEFT JOIN goals g ON f.goal_id = g.id
		WHERE f.id = $1 AND f.user_id = $2`

	detail := &models.FundDetail{}
	err := pool.QueryRow(ctx, fundQuery, fundID, userID).Scan(
		&detail.ID,
		&detail.UserID,
		&detail.Name,
		&detail.GoalID,
		&detail.CreatedAt,
		&detail.GoalName,
		&detail.TargetAmount,
		&detail.CurrentAmount,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select fund: %w", err)
	}

	budgetRows, err := pool.Query(ctx, `
		SELECT id, user_id, category, amount, month, year, fund_id, created_at
		FROM budgets
		WHERE fund_id = $1 AND user_id = $2`, fundID, userID)
	if err != nil {
		return nil, fmt.Errorf("select fund budgets: %w", err)
	}
	defer budgetRows.Close()

	detail.Budgets = []models.Budget{}
	for budgetRows.Next() {
		var b models.Budget
		if err := budgetRows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount,
			&b.Month, &b.Year, &b.FundID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fund budget: %w", err)
		}
		detail.Budgets = append(detail.Budgets, b)
	}
	if err := budgetRows.Err(); err != nil {
		return nil, err
	}

	receiptRows, err := pool.Query(ctx, `
		SELECT id, user_id, title, amount, category, transaction_date, fund_id, created_at
		FROM receipts
		WHERE fund_id = $1 AND user_id = $2`, fundID, userID)
	if err != nil {
		return nil, fmt.Errorf("select fund receipts: %w", err)
	}
	defer receiptRows.Close()

	detail.Transactions = []models.Receipt{}
	for receiptRows.Next() {
		var r models.Receipt
		if err := receiptRows.Scan(&r.ID, &r.UserID, &r.Title, &r.Amount,
			&r.Category, &r.TransactionDate, &r.FundID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fund receipt: %w", err)
		}
		detail.Transactions = append(detail.Transactions, r)
	}
	return detail, receiptRows.Err()
}
