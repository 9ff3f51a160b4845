package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
)

func TestQuickAccessCache(t *testing.T) {
	c := NewQuickAccessCache(time.Minute)
	links := []model.QuickAccessLink{{ID: 1, Title: "Başvuru"}}

	_, ok := c.Get(model.ModulePage, 1)
	assert.False(t, ok)

	c.Set(model.ModulePage, 1, links, 0)
	c.Set(model.ModulePage, 2, links, 0)
	c.Set(model.ModuleNews, 1, links, 0)

	got, ok := c.Get(model.ModulePage, 1)
	require.True(t, ok)
	assert.Equal(t, links, got)

	c.Invalidate(model.ModulePage, 1)
	_, ok = c.Get(model.ModulePage, 1)
	assert.False(t, ok)

	assert.Equal(t, 1, c.InvalidateModuleType(model.ModulePage))
	_, ok = c.Get(model.ModuleNews, 1)
	assert.True(t, ok, "other module types survive")

	c.Set(model.ModuleProject, 7, links, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok = c.Get(model.ModuleProject, 7)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())
}

func TestQuickAccessService_ListByModuleUsesCache(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	repo := repository.NewQuickAccessRepository(db)
	svc := NewQuickAccessService(repo, NewQuickAccessCache(time.Minute), logger.NewNop())

	created, err := svc.Create(ctx, types.QuickAccessLinkRequest{
		ModuleType: strPtr("page"), ModuleID: int64Ptr(3), Title: strPtr("Başvuru Formu"), URL: strPtr("/basvuru"),
	})
	require.NoError(t, err)

	links, err := svc.ListByModule(ctx, model.ModulePage, 3)
	require.NoError(t, err)
	require.Len(t, links, 1)

	// written behind the service's back, so the cached copy is served
	require.NoError(t, repo.Create(ctx, &model.QuickAccessLink{
		ModuleType: model.ModulePage, ModuleID: 3, Title: "Gizli", URL: "/x", IsActive: true,
	}))
	links, err = svc.ListByModule(ctx, model.ModulePage, 3)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	// moving the link invalidates both modules
	_, err = svc.ListByModule(ctx, model.ModuleNews, 9)
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, types.QuickAccessLinkRequest{ModuleType: strPtr("news"), ModuleID: int64Ptr(9)})
	require.NoError(t, err)

	links, err = svc.ListByModule(ctx, model.ModulePage, 3)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Gizli", links[0].Title)

	links, err = svc.ListByModule(ctx, model.ModuleNews, 9)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Başvuru Formu", links[0].Title)

	_, err = svc.ListByModule(ctx, model.ModuleType("blog"), 1)
	assert.ErrorIs(t, err, constants.ErrBadRequest)
}

func TestQuickAccessService_InactiveAndReorder(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	svc := NewQuickAccessService(repository.NewQuickAccessRepository(db), NewQuickAccessCache(time.Minute), logger.NewNop())

	a, err := svc.Create(ctx, types.QuickAccessLinkRequest{
		ModuleType: strPtr("department"), ModuleID: int64Ptr(1), Title: strPtr("A"), URL: strPtr("/a"), Order: intPtr(0),
	})
	require.NoError(t, err)
	b, err := svc.Create(ctx, types.QuickAccessLinkRequest{
		ModuleType: strPtr("department"), ModuleID: int64Ptr(1), Title: strPtr("B"), URL: strPtr("/b"), Order: intPtr(1),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, types.QuickAccessLinkRequest{
		ModuleType: strPtr("department"), ModuleID: int64Ptr(1), Title: strPtr("C"), URL: strPtr("/c"), IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	links, err := svc.ListByModule(ctx, model.ModuleDepartment, 1)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "A", links[0].Title)

	require.NoError(t, svc.Reorder(ctx, []types.ReorderItem{{ID: a.ID, Order: 5}, {ID: b.ID, Order: 0}}))
	links, err = svc.ListByModule(ctx, model.ModuleDepartment, 1)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "B", links[0].Title)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, svc.Delete(ctx, b.ID))
	links, err = svc.ListByModule(ctx, model.ModuleDepartment, 1)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	_, err = svc.Create(ctx, types.QuickAccessLinkRequest{ModuleType: strPtr("page"), Title: strPtr("x"), URL: strPtr("/")})
	assert.ErrorIs(t, err, constants.ErrBadRequest)
}

func TestHighlightService_PublicListCached(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	_, rdb := newTestRedis(t)
	svc := NewHighlightService(repository.NewHighlightRepository(db), rdb, logger.NewNop())

	h, err := svc.Create(ctx, types.HighlightRequest{Title: strPtr("Yeni Projeler"), SourceID: int64Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", h.SourceType)
	assert.Nil(t, h.SourceID)

	items, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = svc.Update(ctx, h.ID, types.HighlightRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	items, err = svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
