package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
)

func newDepartmentService(t *testing.T) *DepartmentService {
	t.Helper()
	db := databasetest.NewDB(t)
	_, rdb := newTestRedis(t)
	return NewDepartmentService(
		repository.NewDepartmentRepository(db),
		repository.NewPersonnelRepository(db),
		repository.NewExecutiveRepository(db),
		rdb, logger.NewNop(),
	)
}

func TestDepartmentService_DetailWithStaff(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	d, err := svc.CreateDepartment(ctx, types.DepartmentRequest{
		Name:     strPtr("Fen İşleri"),
		Services: []string{"Altyapı", "Yol bakımı"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fen-isleri", d.Slug)
	assert.Equal(t, []string{"Altyapı", "Yol bakımı"}, d.Services)

	_, err = svc.CreatePersonnel(ctx, types.PersonnelRequest{
		Name: strPtr("Ali Demir"), Type: strPtr("DIRECTOR"), DepartmentID: int64Ptr(d.ID),
	})
	require.NoError(t, err)
	_, err = svc.CreatePersonnel(ctx, types.PersonnelRequest{
		Name: strPtr("Zeynep Kaya"), Type: strPtr("CHIEF"), DepartmentID: int64Ptr(d.ID), Order: intPtr(1),
	})
	require.NoError(t, err)
	_, err = svc.CreatePersonnel(ctx, types.PersonnelRequest{
		Name: strPtr("Pasif Şef"), Type: strPtr("CHIEF"), DepartmentID: int64Ptr(d.ID), IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	detail, err := svc.GetDepartmentDetail(ctx, "fen-isleri")
	require.NoError(t, err)
	require.NotNil(t, detail.Director)
	assert.Equal(t, "Ali Demir", detail.Director.Name)
	require.Len(t, detail.Chiefs, 1)
	assert.Equal(t, "Zeynep Kaya", detail.Chiefs[0].Name)

	_, err = svc.CreatePersonnel(ctx, types.PersonnelRequest{
		Name: strPtr("Yetim"), Type: strPtr("CHIEF"), DepartmentID: int64Ptr(999),
	})
	assert.ErrorIs(t, err, constants.ErrNotFound)

	_, err = svc.CreatePersonnel(ctx, types.PersonnelRequest{Name: strPtr("Tipsiz")})
	assert.ErrorIs(t, err, constants.ErrBadRequest)
}

func TestDepartmentService_InactiveAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	d, err := svc.CreateDepartment(ctx, types.DepartmentRequest{Name: strPtr("Emlak")})
	require.NoError(t, err)
	p, err := svc.CreatePersonnel(ctx, types.PersonnelRequest{
		Name: strPtr("Mehmet Yıldız"), Type: strPtr("DIRECTOR"), DepartmentID: int64Ptr(d.ID),
	})
	require.NoError(t, err)

	list, err := svc.ListDepartments(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.UpdateDepartment(ctx, d.ID, types.DepartmentRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	// the update flushed the cached public list
	list, err = svc.ListDepartments(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = svc.GetDepartmentDetail(ctx, d.Slug)
	assert.ErrorIs(t, err, constants.ErrNotFound)

	_, err = svc.CreateDepartment(ctx, types.DepartmentRequest{Name: strPtr("Başka"), Slug: strPtr(d.Slug)})
	assert.ErrorIs(t, err, constants.ErrConflict)

	require.NoError(t, svc.DeleteDepartment(ctx, d.ID))
	orphan, err := svc.GetPersonnel(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.DepartmentID)
}

func TestDepartmentService_Executives(t *testing.T) {
	ctx := context.Background()
	svc := newDepartmentService(t)

	_, err := svc.CreateExecutive(ctx, types.ExecutiveRequest{Name: strPtr("Başkan"), Type: strPtr("PRESIDENT")})
	require.NoError(t, err)
	gm, err := svc.CreateExecutive(ctx, types.ExecutiveRequest{Name: strPtr("Genel Müdür"), Type: strPtr("GENERAL_MANAGER")})
	require.NoError(t, err)

	all, err := svc.ListExecutives(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	managers, err := svc.ListExecutives(ctx, model.ExecutiveGeneralManager, true)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, gm.ID, managers[0].ID)

	require.NoError(t, svc.DeleteExecutive(ctx, gm.ID))
	managers, err = svc.ListExecutives(ctx, model.ExecutiveGeneralManager, true)
	require.NoError(t, err)
	assert.Empty(t, managers)
}
