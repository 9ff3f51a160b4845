package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// NewsCategoryRepository news category storage
type NewsCategoryRepository interface {
	Create(ctx context.Context, c *model.NewsCategory) error
	GetByID(ctx context.Context, id int64) (*model.NewsCategory, error)
	GetBySlug(ctx context.Context, slug string) (*model.NewsCategory, error)
	List(ctx context.Context, activeOnly bool) ([]model.NewsCategory, error)
	Update(ctx context.Context, c *model.NewsCategory) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// PageCategoryRepository page category storage
type PageCategoryRepository interface {
	Create(ctx context.Context, c *model.PageCategory) error
	GetByID(ctx context.Context, id int64) (*model.PageCategory, error)
	List(ctx context.Context, activeOnly bool) ([]model.PageCategory, error)
	Update(ctx context.Context, c *model.PageCategory) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// categoryTable shared SQL for the two category tables, which have the same shape
type categoryTable[T any] struct {
	baseRepository
	table string
	what  string
}

func (r *categoryTable[T]) create(ctx context.Context, c *T) (int64, error) {
	return r.insert(ctx, r.what, `INSERT INTO `+r.table+` (name, slug, description, display_order, is_active)
		VALUES (:name, :slug, :description, :display_order, :is_active)`, c)
}

func (r *categoryTable[T]) getByID(ctx context.Context, id int64) (*T, error) {
	c := new(T)
	if err := r.baseRepository.getByID(ctx, c, r.table, r.what, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryTable[T]) getBySlug(ctx context.Context, slug string) (*T, error) {
	c := new(T)
	if err := r.conn().GetContext(ctx, c, `SELECT * FROM `+r.table+` WHERE slug = ?`, slug); err != nil {
		return nil, translate(err, r.what)
	}
	return c, nil
}

func (r *categoryTable[T]) list(ctx context.Context, activeOnly bool) ([]T, error) {
	query := `SELECT * FROM ` + r.table
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	items := []T{}
	err := r.conn().SelectContext(ctx, &items, query)
	return items, err
}

func (r *categoryTable[T]) update(ctx context.Context, c *T) error {
	return r.execOne(ctx, r.what, `UPDATE `+r.table+` SET name = :name, slug = :slug, description = :description,
		display_order = :display_order, is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, c)
}

type newsCategoryRepository struct {
	categoryTable[model.NewsCategory]
}

// NewNewsCategoryRepository creates the news category repository
func NewNewsCategoryRepository(db *sqlx.DB) NewsCategoryRepository {
	return &newsCategoryRepository{categoryTable[model.NewsCategory]{baseRepository{db: db}, "news_categories", "news category"}}
}

func (r *newsCategoryRepository) Create(ctx context.Context, c *model.NewsCategory) error {
	id, err := r.create(ctx, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *newsCategoryRepository) GetByID(ctx context.Context, id int64) (*model.NewsCategory, error) {
	return r.getByID(ctx, id)
}

func (r *newsCategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.NewsCategory, error) {
	return r.getBySlug(ctx, slug)
}

func (r *newsCategoryRepository) List(ctx context.Context, activeOnly bool) ([]model.NewsCategory, error) {
	return r.list(ctx, activeOnly)
}

func (r *newsCategoryRepository) Update(ctx context.Context, c *model.NewsCategory) error {
	return r.update(ctx, c)
}

// Delete removes the category together with its news and their tag links
func (r *newsCategoryRepository) Delete(ctx context.Context, id int64) error {
	return RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM news_tags WHERE news_id IN (SELECT id FROM news WHERE category_id = ?)`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM news WHERE category_id = ?`, id); err != nil {
			return err
		}
		return baseRepository{db: r.db, tx: tx}.deleteByID(ctx, r.table, r.what, id)
	})
}

func (r *newsCategoryRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, r.table, slug, excludeID)
}

type pageCategoryRepository struct {
	categoryTable[model.PageCategory]
}

// NewPageCategoryRepository creates the page category repository
func NewPageCategoryRepository(db *sqlx.DB) PageCategoryRepository {
	return &pageCategoryRepository{categoryTable[model.PageCategory]{baseRepository{db: db}, "page_categories", "page category"}}
}

func (r *pageCategoryRepository) Create(ctx context.Context, c *model.PageCategory) error {
	id, err := r.create(ctx, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *pageCategoryRepository) GetByID(ctx context.Context, id int64) (*model.PageCategory, error) {
	return r.getByID(ctx, id)
}

func (r *pageCategoryRepository) List(ctx context.Context, activeOnly bool) ([]model.PageCategory, error) {
	return r.list(ctx, activeOnly)
}

func (r *pageCategoryRepository) Update(ctx context.Context, c *model.PageCategory) error {
	return r.update(ctx, c)
}

// Delete removes the category together with its pages
func (r *pageCategoryRepository) Delete(ctx context.Context, id int64) error {
	return RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE category_id = ?`, id); err != nil {
			return err
		}
		return baseRepository{db: r.db, tx: tx}.deleteByID(ctx, r.table, r.what, id)
	})
}

func (r *pageCategoryRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, r.table, slug, excludeID)
}
