package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// ListCategories returns the user's categories ordered by name.
func ListCategories(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category after checking for a case-insensitive
// duplicate name for the same user. Returns ErrDuplicate on a match.
func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE user_id = $1 AND lower(name) = lower($2))`,
		category.UserID, category.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check category exists: %w", err)
	}
	if exists {
		return ErrDuplicate
	}

	query := `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err = pool.QueryRow(ctx, query, category.UserID, category.Name).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// UpdateCategory renames a category owned by the user.
func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID int, name string) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, created_at`

	category := &models.Category{}
	err := pool.QueryRow(ctx, query, name, categoryID, userID).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category owned by the user.
func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID int) error {
	result, err := pool.Exec(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
