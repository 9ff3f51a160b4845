package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// PageRepository static page storage
type PageRepository interface {
	Create(ctx context.Context, p *model.Page) error
	GetByID(ctx context.Context, id int64) (*model.Page, error)
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)
	List(ctx context.Context, filter model.PageFilter) ([]model.Page, int64, error)
	Update(ctx context.Context, p *model.Page) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type pageRepository struct {
	baseRepository
}

// NewPageRepository creates the page repository
func NewPageRepository(db *sqlx.DB) PageRepository {
	return &pageRepository{baseRepository{db: db}}
}

func (r *pageRepository) Create(ctx context.Context, p *model.Page) error {
	id, err := r.insert(ctx, "page", `INSERT INTO pages
		(title, slug, content, excerpt, image_url, meta_title, meta_description, category_id, is_active, display_order, published_at)
		VALUES (:title, :slug, :content, :excerpt, :image_url, :meta_title, :meta_description, :category_id, :is_active, :display_order, :published_at)`, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *pageRepository) GetByID(ctx context.Context, id int64) (*model.Page, error) {
	p := &model.Page{}
	if err := r.getByID(ctx, p, "pages", "page", id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	p := &model.Page{}
	if err := r.conn().GetContext(ctx, p, `SELECT * FROM pages WHERE slug = ?`, slug); err != nil {
		return nil, translate(err, "page")
	}
	return p, nil
}

func (r *pageRepository) List(ctx context.Context, filter model.PageFilter) ([]model.Page, int64, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.CategoryID > 0 {
		where = append(where, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, "(title LIKE ? OR slug LIKE ?)")
		args = append(args, likePattern(q), likePattern(q))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn().GetContext(ctx, &total, `SELECT COUNT(*) FROM pages`+clause, args...); err != nil {
		return nil, 0, err
	}

	items := []model.Page{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM pages`+clause+` ORDER BY display_order, id LIMIT ? OFFSET ?`,
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *pageRepository) Update(ctx context.Context, p *model.Page) error {
	return r.execOne(ctx, "page", `UPDATE pages SET title = :title, slug = :slug, content = :content, excerpt = :excerpt,
		image_url = :image_url, meta_title = :meta_title, meta_description = :meta_description,
		category_id = :category_id, is_active = :is_active, display_order = :display_order,
		published_at = :published_at, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, p)
}

func (r *pageRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "pages", "page", id)
}

func (r *pageRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "pages", slug, excludeID)
}
