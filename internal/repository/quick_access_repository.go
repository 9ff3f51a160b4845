package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
	"kentkonut/internal/types"
)

// QuickAccessRepository quick access link storage
type QuickAccessRepository interface {
	Create(ctx context.Context, l *model.QuickAccessLink) error
	GetByID(ctx context.Context, id int64) (*model.QuickAccessLink, error)
	List(ctx context.Context) ([]model.QuickAccessLink, error)
	ListByModule(ctx context.Context, moduleType model.ModuleType, moduleID int64, activeOnly bool) ([]model.QuickAccessLink, error)
	Update(ctx context.Context, l *model.QuickAccessLink) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, items []types.ReorderItem) error
}

type quickAccessRepository struct {
	baseRepository
}

// NewQuickAccessRepository creates the quick access repository
func NewQuickAccessRepository(db *sqlx.DB) QuickAccessRepository {
	return &quickAccessRepository{baseRepository{db: db}}
}

func (r *quickAccessRepository) Create(ctx context.Context, l *model.QuickAccessLink) error {
	id, err := r.insert(ctx, "quick access link", `INSERT INTO quick_access_links
		(module_type, module_id, title, url, icon, display_order, is_active)
		VALUES (:module_type, :module_id, :title, :url, :icon, :display_order, :is_active)`, l)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *quickAccessRepository) GetByID(ctx context.Context, id int64) (*model.QuickAccessLink, error) {
	l := &model.QuickAccessLink{}
	if err := r.getByID(ctx, l, "quick_access_links", "quick access link", id); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *quickAccessRepository) List(ctx context.Context) ([]model.QuickAccessLink, error) {
	items := []model.QuickAccessLink{}
	err := r.conn().SelectContext(ctx, &items,
		`SELECT * FROM quick_access_links ORDER BY module_type, module_id, display_order, id`)
	return items, err
}

func (r *quickAccessRepository) ListByModule(ctx context.Context, moduleType model.ModuleType, moduleID int64, activeOnly bool) ([]model.QuickAccessLink, error) {
	query := `SELECT * FROM quick_access_links WHERE module_type = ? AND module_id = ?`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	items := []model.QuickAccessLink{}
	err := r.conn().SelectContext(ctx, &items, query+` ORDER BY display_order, id`, moduleType, moduleID)
	return items, err
}

func (r *quickAccessRepository) Update(ctx context.Context, l *model.QuickAccessLink) error {
	return r.execOne(ctx, "quick access link", `UPDATE quick_access_links SET module_type = :module_type,
		module_id = :module_id, title = :title, url = :url, icon = :icon, display_order = :display_order,
		is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, l)
}

func (r *quickAccessRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "quick_access_links", "quick access link", id)
}

func (r *quickAccessRepository) Reorder(ctx context.Context, items []types.ReorderItem) error {
	return r.reorder(ctx, "quick_access_links", "quick access link", items)
}
