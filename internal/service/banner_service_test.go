package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
)

type bannerFixture struct {
	svc   *BannerService
	tasks *inlineTasks
	now   time.Time
}

func newBannerFixture(t *testing.T) *bannerFixture {
	t.Helper()
	db := databasetest.NewDB(t)
	_, rdb := newTestRedis(t)
	tasks := &inlineTasks{}
	svc := NewBannerService(
		repository.NewBannerGroupRepository(db),
		repository.NewBannerRepository(db),
		repository.NewBannerPositionRepository(db),
		tasks, rdb, logger.NewNop(),
	)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return &bannerFixture{svc: svc, tasks: tasks, now: now}
}

func TestBannerService_ResolvePositionFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	primary, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("Kampanya")})
	require.NoError(t, err)
	fallback, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("Varsayılan")})
	require.NoError(t, err)

	ended := f.now.Add(-time.Hour)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(primary.ID), Title: strPtr("eski"), ImageURL: strPtr("/a.jpg"), EndDate: &ended,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(fallback.ID), Title: strPtr("yedek"), ImageURL: strPtr("/b.jpg"),
	})
	require.NoError(t, err)

	pos, err := f.svc.CreatePosition(ctx, types.BannerPositionRequest{
		Name: strPtr("Anasayfa üst"), BannerGroupID: int64Ptr(primary.ID), FallbackGroupID: int64Ptr(fallback.ID),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pos.PositionUUID)

	res, err := f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	require.Len(t, res.Banners, 1)
	assert.Equal(t, "yedek", res.Banners[0].Title)
	assert.Equal(t, fallback.ID, res.Group.ID)
}

func TestBannerService_ResolvePositionPrimaryAndCache(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	g, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("G")})
	require.NoError(t, err)
	assert.Equal(t, "FADE", g.Animation)
	assert.Equal(t, 5000, g.DurationMs)

	end := f.now.Add(24 * time.Hour)
	b, err := f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(g.ID), Title: strPtr("aktif"), ImageURL: strPtr("/x.jpg"), EndDate: &end,
	})
	require.NoError(t, err)
	pos, err := f.svc.CreatePosition(ctx, types.BannerPositionRequest{Name: strPtr("P"), BannerGroupID: int64Ptr(g.ID)})
	require.NoError(t, err)

	res, err := f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.False(t, res.UsedFallback)
	require.Len(t, res.Banners, 1)

	// a cached result is re-filtered against the clock
	f.svc.now = func() time.Time { return f.now.Add(48 * time.Hour) }
	res, err = f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.Empty(t, res.Banners)
	assert.NotNil(t, res.Banners)

	// writes drop the cached entry
	_, err = f.svc.UpdateBanner(ctx, b.ID, types.BannerRequest{ClearSchedule: true})
	require.NoError(t, err)
	res, err = f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.Len(t, res.Banners, 1)
}

func TestBannerService_CachedPositionFollowsSchedules(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	primary, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("Kampanya")})
	require.NoError(t, err)
	fallback, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("Varsayılan")})
	require.NoError(t, err)

	endsSoon := f.now.Add(time.Minute)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(primary.ID), Title: strPtr("bitiyor"), ImageURL: strPtr("/a.jpg"), EndDate: &endsSoon,
	})
	require.NoError(t, err)
	startsLater := f.now.Add(3 * time.Minute)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(primary.ID), Title: strPtr("başlıyor"), ImageURL: strPtr("/c.jpg"), StartDate: &startsLater,
	})
	require.NoError(t, err)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(fallback.ID), Title: strPtr("yedek"), ImageURL: strPtr("/b.jpg"),
	})
	require.NoError(t, err)
	pos, err := f.svc.CreatePosition(ctx, types.BannerPositionRequest{
		Name: strPtr("Anasayfa"), BannerGroupID: int64Ptr(primary.ID), FallbackGroupID: int64Ptr(fallback.ID),
	})
	require.NoError(t, err)

	res, err := f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.False(t, res.UsedFallback)
	require.Len(t, res.Banners, 1)
	assert.Equal(t, "bitiyor", res.Banners[0].Title)

	// served from cache: the primary banner has ended, the fallback takes over
	f.svc.now = func() time.Time { return f.now.Add(2 * time.Minute) }
	res, err = f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	require.Len(t, res.Banners, 1)
	assert.Equal(t, "yedek", res.Banners[0].Title)
	assert.Equal(t, fallback.ID, res.Group.ID)

	// a banner whose start date arrives while cached becomes visible
	f.svc.now = func() time.Time { return f.now.Add(4 * time.Minute) }
	res, err = f.svc.ResolvePosition(ctx, pos.PositionUUID)
	require.NoError(t, err)
	assert.False(t, res.UsedFallback)
	require.Len(t, res.Banners, 1)
	assert.Equal(t, "başlıyor", res.Banners[0].Title)
	assert.Equal(t, primary.ID, res.Group.ID)
}

func TestBannerService_InactivePositionIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	pos, err := f.svc.CreatePosition(ctx, types.BannerPositionRequest{Name: strPtr("P"), IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = f.svc.ResolvePosition(ctx, pos.PositionUUID)
	assert.ErrorIs(t, err, constants.ErrNotFound)

	_, err = f.svc.ResolvePosition(ctx, "11111111-2222-3333-4444-555555555555")
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestBannerService_ScheduleValidation(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	g, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("G")})
	require.NoError(t, err)

	start, end := f.now, f.now.Add(-time.Hour)
	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{
		BannerGroupID: int64Ptr(g.ID), Title: strPtr("t"), ImageURL: strPtr("/i.jpg"), StartDate: &start, EndDate: &end,
	})
	assert.ErrorIs(t, err, constants.ErrBadRequest)

	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{BannerGroupID: int64Ptr(g.ID), ImageURL: strPtr("/i.jpg")})
	assert.ErrorIs(t, err, constants.ErrBadRequest)
	assert.Equal(t, "title alanı zorunludur", constants.ClientMessage(err, ""))

	_, err = f.svc.CreateBanner(ctx, types.BannerRequest{BannerGroupID: int64Ptr(999), Title: strPtr("t"), ImageURL: strPtr("/i.jpg")})
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestBannerService_Counters(t *testing.T) {
	ctx := context.Background()
	f := newBannerFixture(t)

	g, err := f.svc.CreateGroup(ctx, types.BannerGroupRequest{Name: strPtr("G")})
	require.NoError(t, err)
	b, err := f.svc.CreateBanner(ctx, types.BannerRequest{BannerGroupID: int64Ptr(g.ID), Title: strPtr("t"), ImageURL: strPtr("/i.jpg")})
	require.NoError(t, err)

	f.svc.RecordView(b.ID)
	f.svc.RecordView(b.ID)
	f.svc.RecordClick(b.ID)

	got, err := f.svc.GetBanner(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
	assert.Equal(t, int64(1), got.ClickCount)
	assert.Equal(t, []string{"banner_view", "banner_view", "banner_click"}, f.tasks.names)
}
