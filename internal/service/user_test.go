package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/config"
	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	db := databasetest.NewDB(t)
	return NewAccountService(repository.NewUserRepository(db), config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, logger.NewNop())
}

func TestAccountService_LoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	u, err := svc.Create(ctx, types.CreateUserRequest{Name: "Editör", Email: "Editor@KentKonut.com.tr", Password: "gizli-sifre"})
	require.NoError(t, err)
	assert.Equal(t, "editor@kentkonut.com.tr", u.Email)
	assert.Equal(t, model.RoleEditor, u.Role)

	_, err = svc.Login(ctx, types.LoginRequest{Email: "editor@kentkonut.com.tr", Password: "yanlis"})
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
	assert.Equal(t, constants.MsgInvalidCredentials, constants.ClientMessage(err, ""))

	_, err = svc.Login(ctx, types.LoginRequest{Email: "yok@kentkonut.com.tr", Password: "gizli-sifre"})
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	res, err := svc.Login(ctx, types.LoginRequest{Email: " EDITOR@kentkonut.com.tr ", Password: "gizli-sifre"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, u.ID, res.User.ID)

	got, err := svc.Authenticate(ctx, "Bearer "+res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotNil(t, got.LastLoginAt)

	_, err = svc.Authenticate(ctx, "Bearer not-a-token")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	// expired
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
	assert.Equal(t, constants.MsgInvalidToken, constants.ClientMessage(err, ""))
}

func TestAccountService_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	u, err := svc.Create(ctx, types.CreateUserRequest{Name: "Pasif", Email: "pasif@kentkonut.com.tr", Password: "gizli-sifre"})
	require.NoError(t, err)
	res, err := svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: "gizli-sifre"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u.ID, types.UpdateUserRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, constants.ErrForbidden)

	_, err = svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: "gizli-sifre"})
	assert.ErrorIs(t, err, constants.ErrForbidden)
	assert.Equal(t, constants.MsgAccountDisabled, constants.ClientMessage(err, ""))
}

func TestAccountService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	_, err := svc.Create(ctx, types.CreateUserRequest{Name: "A", Email: "a@kentkonut.com.tr", Password: "gizli-sifre"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, types.CreateUserRequest{Name: "B", Email: "A@kentkonut.com.tr", Password: "gizli-sifre"})
	assert.ErrorIs(t, err, constants.ErrConflict)
	assert.Equal(t, constants.MsgEmailExists, constants.ClientMessage(err, ""))
}

func TestAccountService_LastAdminGuard(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	admin, err := svc.Create(ctx, types.CreateUserRequest{Name: "Yönetici", Email: "admin@kentkonut.com.tr", Password: "gizli-sifre", Role: "ADMIN"})
	require.NoError(t, err)
	editor, err := svc.Create(ctx, types.CreateUserRequest{Name: "Editör", Email: "editor@kentkonut.com.tr", Password: "gizli-sifre"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, admin.ID, types.UpdateUserRequest{Role: strPtr("EDITOR")})
	assert.ErrorIs(t, err, constants.ErrBadRequest)

	err = svc.Delete(ctx, editor.ID, admin.ID)
	assert.ErrorIs(t, err, constants.ErrBadRequest)

	err = svc.Delete(ctx, admin.ID, admin.ID)
	assert.Equal(t, constants.MsgCannotDeleteSelf, constants.ClientMessage(err, ""))

	// with a second admin the first one can go
	_, err = svc.Update(ctx, editor.ID, types.UpdateUserRequest{Role: strPtr("ADMIN")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, editor.ID, admin.ID))

	_, err = svc.GetByID(ctx, admin.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)

	page, err := svc.List(ctx, types.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	u, err := svc.Create(ctx, types.CreateUserRequest{Name: "U", Email: "u@kentkonut.com.tr", Password: "eski-sifre"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, u.ID, types.ChangePasswordRequest{CurrentPassword: "hatali", NewPassword: "yeni-sifre"})
	assert.ErrorIs(t, err, constants.ErrBadRequest)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, types.ChangePasswordRequest{CurrentPassword: "eski-sifre", NewPassword: "yeni-sifre"}))

	_, err = svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: "yeni-sifre"})
	assert.NoError(t, err)
}
