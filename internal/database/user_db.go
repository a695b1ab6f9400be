package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// CreateUser inserts a new user row. The password must already be hashed.
// Returns ErrDuplicate when the username or email is taken.
func CreateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	query := `
		INSERT INTO users (username, email, hashed_pw)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query, user.Username, user.Email, user.HashedPw).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail loads a user including the password hash, for login.
func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, hashed_pw, created_at
		FROM users
		WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPw,
		&user.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return user, nil
}

// GetUserByID loads a user by id, including the password hash.
func GetUserByID(ctx context.Context, pool *pgxpool.Pool, userID int) (*models.User, error) {
	query := `
		SELECT id, username, email, hashed_pw, created_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPw,
		&user.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}
	return user, nil
}

// UpdateUserPassword replaces the stored hash for a user.
func UpdateUserPassword(ctx context.Context, pool *pgxpool.Pool, userID int, hashedPw string) error {
	result, err := pool.Exec(ctx,
		`UPDATE users SET hashed_pw = $1 WHERE id = $2`, hashedPw, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
