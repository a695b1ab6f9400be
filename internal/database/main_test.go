package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/auth"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// testPool connects to the database named by TEST_DATABASE_URL, skipping
// the test when none is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	pool, err := database.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// createTestUser registers a throwaway user and removes it (cascading to
// all owned rows) when the test finishes.
func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	suffix := time.Now().UnixNano()
	user := &models.User{
		Username: fmt.Sprintf("tester_%d", suffix),
		Email:    fmt.Sprintf("tester_%d@example.com", suffix),
		HashedPw: hashed,
	}
	require.NoError(t, database.CreateUser(context.Background(), pool, user))

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}
