package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

func newBudget(userID int, category, amount string, month, year int) *models.Budget {
	return &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Month:    month,
		Year:     year,
	}
}

func TestCreateBudgetDuplicatePeriod(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	require.NoError(t, database.CreateBudget(ctx, pool, newBudget(user.ID, "Food", "200", 6, 2024)))

	err := database.CreateBudget(ctx, pool, newBudget(user.ID, "Food", "300", 6, 2024))
	assert.ErrorIs(t, err, database.ErrDuplicate)

	// Same category in a different month is fine.
	assert.NoError(t, database.CreateBudget(ctx, pool, newBudget(user.ID, "Food", "300", 7, 2024)))
}

func TestListBudgetsComputesSpending(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	require.NoError(t, database.CreateBudget(ctx, pool, newBudget(user.ID, "Food", "200", 6, 2024)))
	require.NoError(t, database.CreateBudget(ctx, pool, newBudget(user.ID, "Travel", "500", 6, 2024)))

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, database.CreateReceipt(ctx, pool, newReceipt(user.ID, "Groceries", "30.00", date)))
	require.NoError(t, database.CreateReceipt(ctx, pool, newReceipt(user.ID, "Takeout", "45.00", date)))

	list, err := database.ListBudgetsWithSpending(ctx, pool, user.ID, 6, 2024)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byCategory := map[string]models.BudgetWithSpending{}
	for _, b := range list {
		byCategory[b.Category] = b
	}
	assert.True(t, byCategory["Food"].CurrentSpending.Equal(decimal.RequireFromString("75.00")),
		"got %s", byCategory["Food"].CurrentSpending)
	assert.True(t, byCategory["Travel"].CurrentSpending.IsZero())
}

func TestListBudgetsExcludesOtherUsersReceipts(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	require.NoError(t, database.CreateBudget(ctx, pool, newBudget(user.ID, "Food", "200", 6, 2024)))

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, database.CreateReceipt(ctx, pool, newReceipt(other.ID, "Their lunch", "99.00", date)))

	list, err := database.ListBudgetsWithSpending(ctx, pool, user.ID, 6, 2024)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].CurrentSpending.IsZero())
}

func TestDeleteBudgetScopedToOwner(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	budget := newBudget(user.ID, "Food", "200", 6, 2024)
	require.NoError(t, database.CreateBudget(ctx, pool, budget))

	assert.ErrorIs(t, database.DeleteBudget(ctx, pool, other.ID, budget.ID), database.ErrNotFound)
	require.NoError(t, database.DeleteBudget(ctx, pool, user.ID, budget.ID))
}
