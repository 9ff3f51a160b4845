package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// GalleryRepository galleries and the media placed in them
type GalleryRepository interface {
	Create(ctx context.Context, g *model.Gallery) error
	GetByID(ctx context.Context, id int64) (*model.Gallery, error)
	GetBySlug(ctx context.Context, slug string) (*model.Gallery, error)
	List(ctx context.Context, activeOnly bool) ([]model.Gallery, error)
	Update(ctx context.Context, g *model.Gallery) error
	// Delete removes the gallery, its sub-galleries and their items
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
	// ParentMap gallery id to parent id for every gallery
	ParentMap(ctx context.Context) (map[int64]*int64, error)

	ListItems(ctx context.Context, galleryID int64) ([]model.GalleryItem, error)
	AddItem(ctx context.Context, it *model.GalleryItem) error
	DeleteItem(ctx context.Context, galleryID, itemID int64) error
}

type galleryRepository struct {
	baseRepository
}

// NewGalleryRepository creates the gallery repository
func NewGalleryRepository(db *sqlx.DB) GalleryRepository {
	return &galleryRepository{baseRepository{db: db}}
}

func (r *galleryRepository) Create(ctx context.Context, g *model.Gallery) error {
	id, err := r.insert(ctx, "gallery", `INSERT INTO galleries
		(parent_id, title, slug, description, cover_image_url, display_order, is_active)
		VALUES (:parent_id, :title, :slug, :description, :cover_image_url, :display_order, :is_active)`, g)
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*model.Gallery, error) {
	g := &model.Gallery{}
	if err := r.getByID(ctx, g, "galleries", "gallery", id); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) GetBySlug(ctx context.Context, slug string) (*model.Gallery, error) {
	g := &model.Gallery{}
	if err := r.conn().GetContext(ctx, g, `SELECT * FROM galleries WHERE slug = ?`, slug); err != nil {
		return nil, translate(err, "gallery")
	}
	return g, nil
}

func (r *galleryRepository) List(ctx context.Context, activeOnly bool) ([]model.Gallery, error) {
	query := `SELECT * FROM galleries`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	items := []model.Gallery{}
	err := r.conn().SelectContext(ctx, &items, query+` ORDER BY display_order, id`)
	return items, err
}

func (r *galleryRepository) Update(ctx context.Context, g *model.Gallery) error {
	return r.execOne(ctx, "gallery", `UPDATE galleries SET parent_id = :parent_id, title = :title, slug = :slug,
		description = :description, cover_image_url = :cover_image_url, display_order = :display_order,
		is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, g)
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "galleries", "gallery", id)
}

func (r *galleryRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "galleries", slug, excludeID)
}

func (r *galleryRepository) ParentMap(ctx context.Context) (map[int64]*int64, error) {
	var rows []struct {
		ID       int64  `db:"id"`
		ParentID *int64 `db:"parent_id"`
	}
	if err := r.conn().SelectContext(ctx, &rows, `SELECT id, parent_id FROM galleries`); err != nil {
		return nil, err
	}
	parents := make(map[int64]*int64, len(rows))
	for _, row := range rows {
		parents[row.ID] = row.ParentID
	}
	return parents, nil
}

func (r *galleryRepository) ListItems(ctx context.Context, galleryID int64) ([]model.GalleryItem, error) {
	items := []model.GalleryItem{}
	err := r.conn().SelectContext(ctx, &items, `SELECT gi.id, gi.gallery_id, gi.media_id, gi.title,
		gi.display_order, gi.created_at, m.url, m.mime_type, m.alt_text
		FROM gallery_items gi JOIN media m ON m.id = gi.media_id
		WHERE gi.gallery_id = ? ORDER BY gi.display_order, gi.id`, galleryID)
	return items, err
}

func (r *galleryRepository) AddItem(ctx context.Context, it *model.GalleryItem) error {
	id, err := r.insert(ctx, "gallery item", `INSERT INTO gallery_items (gallery_id, media_id, title, display_order)
		VALUES (:gallery_id, :media_id, :title, :display_order)`, it)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (r *galleryRepository) DeleteItem(ctx context.Context, galleryID, itemID int64) error {
	res, err := r.conn().ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ? AND gallery_id = ?`, itemID, galleryID)
	if err != nil {
		return err
	}
	return expectOne(res, "gallery item")
}
