package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

func TestCategoriesListedAlphabetically(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	for _, name := range []string{"Rent", "Food", "Travel"} {
		cat := &models.Category{UserID: user.ID, Name: name}
		require.NoError(t, database.CreateCategory(ctx, pool, cat))
	}

	cats, err := database.ListCategories(ctx, pool, user.ID)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, "Rent", cats[1].Name)
	assert.Equal(t, "Travel", cats[2].Name)
}

func TestCreateCategoryDuplicateIsCaseInsensitive(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	require.NoError(t, database.CreateCategory(ctx, pool, &models.Category{UserID: user.ID, Name: "Food"}))

	err := database.CreateCategory(ctx, pool, &models.Category{UserID: user.ID, Name: "food"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	// Another user may reuse the name.
	other := createTestUser(t, pool)
	assert.NoError(t, database.CreateCategory(ctx, pool, &models.Category{UserID: other.ID, Name: "Food"}))
}

func TestUpdateCategoryScopedToOwner(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	cat := &models.Category{UserID: user.ID, Name: "Food"}
	require.NoError(t, database.CreateCategory(ctx, pool, cat))

	updated, err := database.UpdateCategory(ctx, pool, user.ID, cat.ID, "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)

	_, err = database.UpdateCategory(ctx, pool, other.ID, cat.ID, "Stolen")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteCategory(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)
	other := createTestUser(t, pool)

	cat := &models.Category{UserID: user.ID, Name: "Food"}
	require.NoError(t, database.CreateCategory(ctx, pool, cat))

	assert.ErrorIs(t, database.DeleteCategory(ctx, pool, other.ID, cat.ID), database.ErrNotFound)
	require.NoError(t, database.DeleteCategory(ctx, pool, user.ID, cat.ID))

	cats, err := database.ListCategories(ctx, pool, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cats)
}
