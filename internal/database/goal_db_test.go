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

func TestCreateGoalStartsAtZero(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	target := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := &models.Goal{
		UserID:       user.ID,
		Name:         "Vacation",
		TargetAmount: decimal.RequireFromString("1500"),
		TargetDate:   &target,
	}
	require.NoError(t, database.CreateGoal(ctx, pool, goal))

	assert.NotZero(t, goal.ID)
	assert.True(t, goal.CurrentAmount.IsZero())
}

func TestAddSavingsAccumulates(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	goal := &models.Goal{
		UserID:       user.ID,
		Name:         "Vacation",
		TargetAmount: decimal.RequireFromString("1500"),
	}
	require.NoError(t, database.CreateGoal(ctx, pool, goal))

	updated, err := database.AddSavings(ctx, pool, user.ID, goal.ID, decimal.RequireFromString("50"))
	require.NoError(t, err)
	assert.True(t, updated.CurrentAmount.Equal(decimal.RequireFromString("50")))

	updated, err = database.AddSavings(ctx, pool, user.ID, goal.ID, decimal.RequireFromString("25"))
	require.NoError(t, err)
	assert.True(t, updated.CurrentAmount.Equal(decimal.RequireFromString("75")))
}

func TestAddSavingsScopedToOwner(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	goal := &models.Goal{
		UserID:       user.ID,
		Name:         "Vacation",
		TargetAmount: decimal.RequireFromString("1500"),
	}
	require.NoError(t, database.CreateGoal(ctx, pool, goal))

	_, err := database.AddSavings(ctx, pool, other.ID, goal.ID, decimal.RequireFromString("50"))
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestGoalsOrderedByTargetDate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	soon := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, database.CreateGoal(ctx, pool, &models.Goal{
		UserID: user.ID, Name: "Car", TargetAmount: decimal.RequireFromString("8000"), TargetDate: &late,
	}))
	require.NoError(t, database.CreateGoal(ctx, pool, &models.Goal{
		UserID: user.ID, Name: "Vacation", TargetAmount: decimal.RequireFromString("1500"), TargetDate: &soon,
	}))

	goals, err := database.ListGoals(ctx, pool, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "Vacation", goals[0].Name)
	assert.Equal(t, "Car", goals[1].Name)
}
