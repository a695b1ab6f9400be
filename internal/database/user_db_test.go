package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/auth"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/database"
	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

func TestCreateAndFetchUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := database.GetUserByEmail(ctx, pool, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, user.Username, byEmail.Username)
	assert.True(t, auth.CheckPassword(byEmail.HashedPw, "password123"))

	byID, err := database.GetUserByID(ctx, pool, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	dup := &models.User{
		Username: user.Username + "_2",
		Email:    user.Email,
		HashedPw: user.HashedPw,
	}
	err := database.CreateUser(ctx, pool, dup)
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestGetUserByEmailMissing(t *testing.T) {
	pool := testPool(t)

	_, err := database.GetUserByEmail(context.Background(), pool, "nobody@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUpdateUserPassword(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := createTestUser(t, pool)

	hashed, err := auth.HashPassword("newpassword")
	require.NoError(t, err)
	require.NoError(t, database.UpdateUserPassword(ctx, pool, user.ID, hashed))

	fetched, err := database.GetUserByID(ctx, pool, user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(fetched.HashedPw, "newpassword"))
	assert.False(t, auth.CheckPassword(fetched.HashedPw, "password123"))
}
