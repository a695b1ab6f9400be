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

func newRule(userID int, title string, start time.Time) *models.RecurringRule {
	return &models.RecurringRule{
		UserID:    userID,
		Title:     title,
		Amount:    decimal.RequireFromString("1200"),
		Category:  "Rent",
		Frequency: models.FrequencyMonthly,
		StartDate: start,
	}
}

func TestCreateRuleDueFromStartDate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rule := newRule(user.ID, "Rent", start)
	require.NoError(t, database.CreateRule(ctx, pool, rule))

	assert.NotZero(t, rule.ID)
	assert.Equal(t, "2024-01-15", rule.NextDueDate.Format("2006-01-02"))
}

func TestDueRulesFiltersByDate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	due := newRule(user.ID, "Rent", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	future := newRule(user.ID, "Insurance", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, database.CreateRule(ctx, pool, due))
	require.NoError(t, database.CreateRule(ctx, pool, future))

	rules, err := database.DueRules(ctx, pool, time.Date(2024, 1, 15, 2, 1, 0, 0, time.UTC))
	require.NoError(t, err)

	ids := map[int]bool{}
	for _, r := range rules {
		ids[r.ID] = true
	}
	assert.True(t, ids[due.ID])
	assert.False(t, ids[future.ID])
}

func TestMaterializeRuleInsertsAndAdvances(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	rule := newRule(user.ID, "Rent", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, database.CreateRule(ctx, pool, rule))

	next := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, database.MaterializeRule(ctx, pool, *rule, next))

	receipts, err := database.ListReceipts(ctx, pool, user.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "Rent", receipts[0].Title)
	assert.True(t, receipts[0].Amount.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, "2024-01-15", receipts[0].TransactionDate.Format("2006-01-02"))

	rules, err := database.ListRules(ctx, pool, user.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "2024-02-15", rules[0].NextDueDate.Format("2006-01-02"))
}

func TestUpdateRuleKeepsSchedule(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	rule := newRule(user.ID, "Rent", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, database.CreateRule(ctx, pool, rule))

	rule.Title = "Rent (new lease)"
	rule.Amount = decimal.RequireFromString("1350")
	updated, err := database.UpdateRule(ctx, pool, rule)
	require.NoError(t, err)
	assert.Equal(t, "Rent (new lease)", updated.Title)
	assert.Equal(t, "2024-01-15", updated.NextDueDate.Format("2006-01-02"))
}

func TestDeleteRuleScopedToOwner(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	rule := newRule(user.ID, "Rent", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, database.CreateRule(ctx, pool, rule))

	assert.ErrorIs(t, database.DeleteRule(ctx, pool, other.ID, rule.ID), database.ErrNotFound)
	require.NoError(t, database.DeleteRule(ctx, pool, user.ID, rule.ID))
}
