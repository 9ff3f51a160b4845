package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/pkg/database/databasetest"
)

func newUser(email string, role model.Role) *model.User {
	return &model.User{Name: "Test", Email: email, Password: "hash", Role: role, IsActive: true}
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.NewDB(t))

	u := newUser("ali@kentkonut.com.tr", model.RoleAdmin)
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := repo.GetByEmail(ctx, "ali@kentkonut.com.tr")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.LastLoginAt)

	got.Name = "Ali Veli"
	got.IsActive = false
	require.NoError(t, repo.Update(ctx, got))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, u.ID, now))

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", got.Name)
	assert.False(t, got.IsActive)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, now.Equal(*got.LastLoginAt))

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), constants.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.NewDB(t))

	require.NoError(t, repo.Create(ctx, newUser("a@b.com", model.RoleEditor)))
	err := repo.Create(ctx, newUser("a@b.com", model.RoleEditor))
	assert.ErrorIs(t, err, constants.ErrConflict)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.NewDB(t))

	require.NoError(t, repo.Create(ctx, newUser("1@x.com", model.RoleAdmin)))
	require.NoError(t, repo.Create(ctx, newUser("2@x.com", model.RoleEditor)))
	inactive := newUser("3@x.com", model.RoleAdmin)
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, inactive))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	admins, err := repo.CountActiveAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2@x.com", page[0].Email)
}

func TestUserRepository_WithTxRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.NewDB(t))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Create(ctx, newUser("tx@x.com", model.RoleEditor)))
	require.NoError(t, tx.Rollback())

	_, err = repo.GetByEmail(ctx, "tx@x.com")
	assert.ErrorIs(t, err, constants.ErrNotFound)
}
