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

func timePtr(t time.Time) *time.Time { return &t }

func TestBannerRepository_LiveWindow(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	groups := NewBannerGroupRepository(db)
	banners := NewBannerRepository(db)

	g := &model.BannerGroup{Name: "Anasayfa", Animation: "FADE", DurationMs: 5000, IsActive: true}
	require.NoError(t, groups.Create(ctx, g))

	now := time.Now().UTC().Truncate(time.Second)
	mk := func(title string, order int, active bool, start, end *time.Time) *model.Banner {
		b := &model.Banner{BannerGroupID: g.ID, Title: title, ImageURL: "/u/" + title + ".jpg", DisplayOrder: order, IsActive: active, StartDate: start, EndDate: end}
		require.NoError(t, banners.Create(ctx, b))
		return b
	}
	mk("open", 2, true, nil, nil)
	mk("window", 1, true, timePtr(now.Add(-2*time.Hour)), timePtr(now.Add(2*time.Hour)))
	mk("future", 0, true, timePtr(now.Add(3*time.Hour)), nil)
	mk("expired", 0, true, nil, timePtr(now.Add(-3*time.Hour)))
	mk("inactive", 0, false, nil, nil)

	active, err := banners.ListActiveByGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, active, 4)

	live := model.LiveBanners(active, now)
	require.Len(t, live, 2)
	assert.Equal(t, "window", live[0].Title)
	assert.Equal(t, "open", live[1].Title)

	all, err := banners.ListByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBannerRepository_Counters(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	groups := NewBannerGroupRepository(db)
	banners := NewBannerRepository(db)

	g := &model.BannerGroup{Name: "G", IsActive: true}
	require.NoError(t, groups.Create(ctx, g))
	b := &model.Banner{BannerGroupID: g.ID, Title: "b", ImageURL: "x", IsActive: true}
	require.NoError(t, banners.Create(ctx, b))

	require.NoError(t, banners.IncrementViews(ctx, b.ID))
	require.NoError(t, banners.IncrementViews(ctx, b.ID))
	require.NoError(t, banners.IncrementClicks(ctx, b.ID))

	got, err := banners.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
	assert.Equal(t, int64(1), got.ClickCount)
}

func TestBannerGroupDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	groups := NewBannerGroupRepository(db)
	banners := NewBannerRepository(db)
	positions := NewBannerPositionRepository(db)

	g := &model.BannerGroup{Name: "G", IsActive: true}
	require.NoError(t, groups.Create(ctx, g))
	b := &model.Banner{BannerGroupID: g.ID, Title: "b", ImageURL: "x", IsActive: true}
	require.NoError(t, banners.Create(ctx, b))
	p := &model.BannerPosition{PositionUUID: "8d1c3d56-3f7e-4a4b-9b8e-0d5f6b1f2a11", Name: "Hero", BannerGroupID: &g.ID, IsActive: true}
	require.NoError(t, positions.Create(ctx, p))

	require.NoError(t, groups.Delete(ctx, g.ID))

	_, err := banners.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)

	pos, err := positions.GetByUUID(ctx, p.PositionUUID)
	require.NoError(t, err)
	assert.Nil(t, pos.BannerGroupID)

	assert.ErrorIs(t, groups.Delete(ctx, g.ID), constants.ErrNotFound)
}

func TestBannerPositionRepository_UniqueUUID(t *testing.T) {
	ctx := context.Background()
	positions := NewBannerPositionRepository(databasetest.NewDB(t))

	uuid := "0b6c5a52-8a43-4f0e-9d3e-2a7b1c9e4d10"
	require.NoError(t, positions.Create(ctx, &model.BannerPosition{PositionUUID: uuid, Name: "A"}))
	err := positions.Create(ctx, &model.BannerPosition{PositionUUID: uuid, Name: "B"})
	assert.ErrorIs(t, err, constants.ErrConflict)

	_, err = positions.GetByUUID(ctx, "missing")
	assert.ErrorIs(t, err, constants.ErrNotFound)
}
