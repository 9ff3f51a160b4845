package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// BannerGroupRepository slider storage
type BannerGroupRepository interface {
	Create(ctx context.Context, g *model.BannerGroup) error
	GetByID(ctx context.Context, id int64) (*model.BannerGroup, error)
	List(ctx context.Context) ([]model.BannerGroup, error)
	Update(ctx context.Context, g *model.BannerGroup) error
	Delete(ctx context.Context, id int64) error
}

// BannerRepository slide storage
type BannerRepository interface {
	Create(ctx context.Context, b *model.Banner) error
	GetByID(ctx context.Context, id int64) (*model.Banner, error)
	ListByGroup(ctx context.Context, groupID int64) ([]model.Banner, error)
	ListActiveByGroup(ctx context.Context, groupID int64) ([]model.Banner, error)
	Update(ctx context.Context, b *model.Banner) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementClicks(ctx context.Context, id int64) error
}

// BannerPositionRepository position storage
type BannerPositionRepository interface {
	Create(ctx context.Context, p *model.BannerPosition) error
	GetByID(ctx context.Context, id int64) (*model.BannerPosition, error)
	GetByUUID(ctx context.Context, uuid string) (*model.BannerPosition, error)
	List(ctx context.Context) ([]model.BannerPosition, error)
	Update(ctx context.Context, p *model.BannerPosition) error
	Delete(ctx context.Context, id int64) error
}

type bannerGroupRepository struct {
	baseRepository
}

// NewBannerGroupRepository creates the banner group repository
func NewBannerGroupRepository(db *sqlx.DB) BannerGroupRepository {
	return &bannerGroupRepository{baseRepository{db: db}}
}

func (r *bannerGroupRepository) Create(ctx context.Context, g *model.BannerGroup) error {
	id, err := r.insert(ctx, "banner group", `INSERT INTO banner_groups
		(name, description, width, height, animation, duration_ms, is_active)
		VALUES (:name, :description, :width, :height, :animation, :duration_ms, :is_active)`, g)
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

func (r *bannerGroupRepository) GetByID(ctx context.Context, id int64) (*model.BannerGroup, error) {
	g := &model.BannerGroup{}
	if err := r.getByID(ctx, g, "banner_groups", "banner group", id); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *bannerGroupRepository) List(ctx context.Context) ([]model.BannerGroup, error) {
	items := []model.BannerGroup{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM banner_groups ORDER BY name, id`)
	return items, err
}

func (r *bannerGroupRepository) Update(ctx context.Context, g *model.BannerGroup) error {
	return r.execOne(ctx, "banner group", `UPDATE banner_groups SET name = :name, description = :description,
		width = :width, height = :height, animation = :animation, duration_ms = :duration_ms, is_active = :is_active,
		updated_at = CURRENT_TIMESTAMP WHERE id = :id`, g)
}

// Delete removes the group; its banners go with it
func (r *bannerGroupRepository) Delete(ctx context.Context, id int64) error {
	return RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM banners WHERE banner_group_id = ?`, id); err != nil {
			return err
		}
		return baseRepository{db: r.db, tx: tx}.deleteByID(ctx, "banner_groups", "banner group", id)
	})
}

type bannerRepository struct {
	baseRepository
}

// NewBannerRepository creates the banner repository
func NewBannerRepository(db *sqlx.DB) BannerRepository {
	return &bannerRepository{baseRepository{db: db}}
}

func (r *bannerRepository) Create(ctx context.Context, b *model.Banner) error {
	id, err := r.insert(ctx, "banner", `INSERT INTO banners
		(banner_group_id, title, description, image_url, link_url, alt_text, display_order, is_active, start_date, end_date)
		VALUES (:banner_group_id, :title, :description, :image_url, :link_url, :alt_text, :display_order, :is_active, :start_date, :end_date)`, b)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id int64) (*model.Banner, error) {
	b := &model.Banner{}
	if err := r.getByID(ctx, b, "banners", "banner", id); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bannerRepository) ListByGroup(ctx context.Context, groupID int64) ([]model.Banner, error) {
	items := []model.Banner{}
	err := r.conn().SelectContext(ctx, &items,
		`SELECT * FROM banners WHERE banner_group_id = ? ORDER BY display_order, id`, groupID)
	return items, err
}

// ListActiveByGroup active banners of a group whatever their schedule; callers filter by time
func (r *bannerRepository) ListActiveByGroup(ctx context.Context, groupID int64) ([]model.Banner, error) {
	items := []model.Banner{}
	err := r.conn().SelectContext(ctx, &items,
		`SELECT * FROM banners WHERE banner_group_id = ? AND is_active = TRUE ORDER BY display_order, id`, groupID)
	return items, err
}

func (r *bannerRepository) Update(ctx context.Context, b *model.Banner) error {
	return r.execOne(ctx, "banner", `UPDATE banners SET banner_group_id = :banner_group_id, title = :title,
		description = :description, image_url = :image_url, link_url = :link_url, alt_text = :alt_text,
		display_order = :display_order, is_active = :is_active, start_date = :start_date, end_date = :end_date,
		updated_at = CURRENT_TIMESTAMP WHERE id = :id`, b)
}

func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "banners", "banner", id)
}

func (r *bannerRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.conn().ExecContext(ctx, `UPDATE banners SET view_count = view_count + 1 WHERE id = ?`, id)
	return err
}

func (r *bannerRepository) IncrementClicks(ctx context.Context, id int64) error {
	_, err := r.conn().ExecContext(ctx, `UPDATE banners SET click_count = click_count + 1 WHERE id = ?`, id)
	return err
}

type bannerPositionRepository struct {
	baseRepository
}

// NewBannerPositionRepository creates the banner position repository
func NewBannerPositionRepository(db *sqlx.DB) BannerPositionRepository {
	return &bannerPositionRepository{baseRepository{db: db}}
}

func (r *bannerPositionRepository) Create(ctx context.Context, p *model.BannerPosition) error {
	id, err := r.insert(ctx, "banner position", `INSERT INTO banner_positions
		(position_uuid, name, description, banner_group_id, fallback_group_id, is_active)
		VALUES (:position_uuid, :name, :description, :banner_group_id, :fallback_group_id, :is_active)`, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *bannerPositionRepository) GetByID(ctx context.Context, id int64) (*model.BannerPosition, error) {
	p := &model.BannerPosition{}
	if err := r.getByID(ctx, p, "banner_positions", "banner position", id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *bannerPositionRepository) GetByUUID(ctx context.Context, uuid string) (*model.BannerPosition, error) {
	p := &model.BannerPosition{}
	if err := r.conn().GetContext(ctx, p, `SELECT * FROM banner_positions WHERE position_uuid = ?`, uuid); err != nil {
		return nil, translate(err, "banner position")
	}
	return p, nil
}

func (r *bannerPositionRepository) List(ctx context.Context) ([]model.BannerPosition, error) {
	items := []model.BannerPosition{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM banner_positions ORDER BY name, id`)
	return items, err
}

func (r *bannerPositionRepository) Update(ctx context.Context, p *model.BannerPosition) error {
	return r.execOne(ctx, "banner position", `UPDATE banner_positions SET position_uuid = :position_uuid, name = :name,
		description = :description, banner_group_id = :banner_group_id, fallback_group_id = :fallback_group_id,
		is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, p)
}

func (r *bannerPositionRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "banner_positions", "banner position", id)
}
