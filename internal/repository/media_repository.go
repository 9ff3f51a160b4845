package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// MediaCategoryRepository media folder storage
type MediaCategoryRepository interface {
	Create(ctx context.Context, c *model.MediaCategory) error
	GetByID(ctx context.Context, id int64) (*model.MediaCategory, error)
	List(ctx context.Context) ([]model.MediaCategory, error)
	Update(ctx context.Context, c *model.MediaCategory) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// MediaRepository uploaded file metadata
type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) error
	GetByID(ctx context.Context, id int64) (*model.Media, error)
	List(ctx context.Context, filter model.MediaFilter) ([]model.Media, int64, error)
	Update(ctx context.Context, m *model.Media) error
	Delete(ctx context.Context, id int64) error
}

type mediaCategoryRepository struct {
	baseRepository
}

type mediaRepository struct {
	baseRepository
}

// NewMediaCategoryRepository creates the media category repository
func NewMediaCategoryRepository(db *sqlx.DB) MediaCategoryRepository {
	return &mediaCategoryRepository{baseRepository{db: db}}
}

// NewMediaRepository creates the media repository
func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{baseRepository{db: db}}
}

func (r *mediaCategoryRepository) Create(ctx context.Context, c *model.MediaCategory) error {
	id, err := r.insert(ctx, "media category", `INSERT INTO media_categories (name, slug, is_built_in, display_order)
		VALUES (:name, :slug, :is_built_in, :display_order)`, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *mediaCategoryRepository) GetByID(ctx context.Context, id int64) (*model.MediaCategory, error) {
	c := &model.MediaCategory{}
	if err := r.getByID(ctx, c, "media_categories", "media category", id); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mediaCategoryRepository) List(ctx context.Context) ([]model.MediaCategory, error) {
	items := []model.MediaCategory{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM media_categories ORDER BY display_order, id`)
	return items, err
}

// Update never touches is_built_in
func (r *mediaCategoryRepository) Update(ctx context.Context, c *model.MediaCategory) error {
	return r.execOne(ctx, "media category", `UPDATE media_categories SET name = :name, slug = :slug,
		display_order = :display_order, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, c)
}

func (r *mediaCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "media_categories", "media category", id)
}

func (r *mediaCategoryRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "media_categories", slug, excludeID)
}

func (r *mediaRepository) Create(ctx context.Context, m *model.Media) error {
	id, err := r.insert(ctx, "media", `INSERT INTO media
		(category_id, filename, original_name, mime_type, size, path, url, alt_text, caption, uploaded_by)
		VALUES (:category_id, :filename, :original_name, :mime_type, :size, :path, :url, :alt_text, :caption, :uploaded_by)`, m)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*model.Media, error) {
	m := &model.Media{}
	if err := r.getByID(ctx, m, "media", "media", id); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *mediaRepository) List(ctx context.Context, filter model.MediaFilter) ([]model.Media, int64, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.CategoryID > 0 {
		where = append(where, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.MimePrefix != "" {
		where = append(where, "mime_type LIKE ?")
		args = append(args, filter.MimePrefix+"%")
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		where = append(where, "(original_name LIKE ? OR alt_text LIKE ?)")
		args = append(args, likePattern(q), likePattern(q))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn().GetContext(ctx, &total, `SELECT COUNT(*) FROM media`+clause, args...); err != nil {
		return nil, 0, err
	}

	items := []model.Media{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM media`+clause+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *mediaRepository) Update(ctx context.Context, m *model.Media) error {
	return r.execOne(ctx, "media", `UPDATE media SET category_id = :category_id, alt_text = :alt_text,
		caption = :caption, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, m)
}

func (r *mediaRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "media", "media", id)
}
