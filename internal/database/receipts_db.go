package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// ListReceipts returns the user's receipts, newest transaction first.
func ListReceipts(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Receipt, error) {
	query := `
		SELECT id, user_id, title, amount, category, transaction_date, fund_id, created_at
		FROM receipts
		WHERE user_id = $1
		ORDER BY transaction_date DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select receipts: %w", err)
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		var r models.Receipt
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Amount, &r.Category,
			&r.TransactionDate, &r.FundID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// CreateReceipt inserts a receipt and fills in its id and created_at.
func CreateReceipt(ctx context.Context, pool *pgxpool.Pool, receipt *models.Receipt) error {
	query := `
		INSERT INTO receipts (user_id, title, amount, category, transaction_date, fund_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		receipt.UserID,
		receipt.Title,
		receipt.Amount,
		receipt.Category,
		receipt.TransactionDate,
		receipt.FundID,
	).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// UpdateReceipt rewrites a receipt owned by the user and returns the row.
func UpdateReceipt(ctx context.Context, pool *pgxpool.Pool, receipt *models.Receipt) (*models.Receipt, error) {
	query := `
		UPDATE receipts
		SET title = $1, amount = $2, category = $3, transaction_date = $4, fund_id = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, title, amount, category, transaction_date, fund_id, created_at`

	updated := &models.Receipt{}
	err := pool.QueryRow(ctx, query,
		receipt.Title,
		receipt.Amount,
		receipt.Category,
		receipt.TransactionDate,
		receipt.FundID,
		receipt.ID,
		receipt.UserID,
	).Scan(&updated.ID, &updated.UserID, &updated.Title, &updated.Amount,
		&updated.Category, &updated.TransactionDate, &updated.FundID, &updated.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update receipt: %w", err)
	}
	return updated, nil
}

// DeleteReceipt removes a receipt owned by the user.
func DeleteReceipt(ctx context.Context, pool *pgxpool.Pool, userID, receiptID int) error {
	result, err := pool.Exec(ctx,
		`DELETE FROM receipts WHERE id = $1 AND user_id = $2`, receiptID, userID)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
