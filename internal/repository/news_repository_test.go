package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/pkg/database/databasetest"
)

type newsFixture struct {
	db         *sqlx.DB
	categories NewsCategoryRepository
	tags       TagRepository
	news       TransactionalNewsRepository
	category   *model.NewsCategory
}

func newNewsFixture(t *testing.T) *newsFixture {
	t.Helper()
	db := databasetest.NewDB(t)
	f := &newsFixture{
		db:         db,
		categories: NewNewsCategoryRepository(db),
		tags:       NewTagRepository(db),
		news:       NewNewsRepository(db),
		category:   &model.NewsCategory{Name: "Duyurular", Slug: "duyurular", IsActive: true},
	}
	require.NoError(t, f.categories.Create(context.Background(), f.category))
	return f
}

func (f *newsFixture) add(t *testing.T, slug string, status model.NewsStatus, publishedAt *time.Time) *model.News {
	t.Helper()
	n := &model.News{Title: "Haber " + slug, Slug: slug, CategoryID: f.category.ID, Status: status, PublishedAt: publishedAt}
	require.NoError(t, f.news.Create(context.Background(), n))
	return n
}

func TestNewsRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	f := newNewsFixture(t)
	now := time.Now().UTC().Truncate(time.Second)

	old := f.add(t, "eski", model.NewsPublished, timePtr(now.Add(-48*time.Hour)))
	fresh := f.add(t, "yeni", model.NewsPublished, timePtr(now.Add(-1*time.Hour)))
	f.add(t, "taslak", model.NewsDraft, nil)

	items, total, err := f.news.List(ctx, model.NewsFilter{Status: model.NewsPublished, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, fresh.ID, items[0].ID, "newest first")
	assert.Equal(t, old.ID, items[1].ID)

	items, total, err = f.news.List(ctx, model.NewsFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, old.ID, items[0].ID)

	items, _, err = f.news.List(ctx, model.NewsFilter{Query: "taslak", Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, total, err = f.news.List(ctx, model.NewsFilter{CategorySlug: "yok", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestNewsRepository_Tags(t *testing.T) {
	ctx := context.Background()
	f := newNewsFixture(t)

	konut := &model.Tag{Name: "Konut", Slug: "konut"}
	kira := &model.Tag{Name: "Kira", Slug: "kira"}
	require.NoError(t, f.tags.Create(ctx, konut))
	require.NoError(t, f.tags.Create(ctx, kira))

	n := f.add(t, "etiketli", model.NewsDraft, nil)

	err := RunInTx(ctx, f.db, func(tx *sqlx.Tx) error {
		return f.news.WithTx(tx).SetTags(ctx, n.ID, []int64{konut.ID, kira.ID, konut.ID})
	})
	require.NoError(t, err)

	tags, err := f.news.TagsByNews(ctx, []int64{n.ID})
	require.NoError(t, err)
	require.Len(t, tags[n.ID], 2)
	assert.Equal(t, "kira", tags[n.ID][0].Slug)

	items, _, err := f.news.List(ctx, model.NewsFilter{TagSlug: "konut", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	cnt, err := f.tags.CountExisting(ctx, []int64{konut.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	require.NoError(t, f.tags.Delete(ctx, kira.ID))
	tags, err = f.news.TagsByNews(ctx, []int64{n.ID})
	require.NoError(t, err)
	assert.Len(t, tags[n.ID], 1)
}

func TestNewsRepository_PublishDue(t *testing.T) {
	ctx := context.Background()
	f := newNewsFixture(t)
	now := time.Now().UTC().Truncate(time.Second)

	due := f.add(t, "zamani-geldi", model.NewsScheduled, timePtr(now.Add(-2*time.Hour)))
	later := f.add(t, "sonra", model.NewsScheduled, timePtr(now.Add(2*time.Hour)))

	n, err := f.news.PublishDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.news.GetByID(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NewsPublished, got.Status)

	got, err = f.news.GetByID(ctx, later.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NewsScheduled, got.Status)
}

func TestNewsCategoryDelete_CascadesNews(t *testing.T) {
	ctx := context.Background()
	f := newNewsFixture(t)
	n := f.add(t, "silinecek", model.NewsDraft, nil)

	require.NoError(t, f.news.IncrementViews(ctx, n.ID))
	got, err := f.news.GetBySlug(ctx, "silinecek")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	require.NoError(t, f.categories.Delete(ctx, f.category.ID))

	_, err = f.news.GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)
	_, err = f.categories.GetBySlug(ctx, "duyurular")
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestPageCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	categories := NewPageCategoryRepository(db)
	pages := NewPageRepository(db)

	c := &model.PageCategory{Name: "Kurumsal", Slug: "kurumsal", IsActive: true}
	require.NoError(t, categories.Create(ctx, c))
	require.NoError(t, categories.Create(ctx, &model.PageCategory{Name: "Gizli", Slug: "gizli"}))

	active, err := categories.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	p := &model.Page{Title: "Hakkımızda", Slug: "hakkimizda", CategoryID: &c.ID, IsActive: true}
	require.NoError(t, pages.Create(ctx, p))

	require.NoError(t, categories.Delete(ctx, c.ID))
	_, err = pages.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)
}
