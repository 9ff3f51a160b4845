package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
	"kentkonut/internal/types"
)

// HighlightRepository homepage highlight cards
type HighlightRepository interface {
	Create(ctx context.Context, h *model.Highlight) error
	GetByID(ctx context.Context, id int64) (*model.Highlight, error)
	List(ctx context.Context, activeOnly bool) ([]model.Highlight, error)
	Update(ctx context.Context, h *model.Highlight) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, items []types.ReorderItem) error
}

type highlightRepository struct {
	baseRepository
}

// NewHighlightRepository creates the highlight repository
func NewHighlightRepository(db *sqlx.DB) HighlightRepository {
	return &highlightRepository{baseRepository{db: db}}
}

func (r *highlightRepository) Create(ctx context.Context, h *model.Highlight) error {
	id, err := r.insert(ctx, "highlight", `INSERT INTO highlights
		(title, subtitle, image_url, redirect_url, source_type, source_id, display_order, is_active)
		VALUES (:title, :subtitle, :image_url, :redirect_url, :source_type, :source_id, :display_order, :is_active)`, h)
	if err != nil {
		return err
	}
	h.ID = id
	return nil
}

func (r *highlightRepository) GetByID(ctx context.Context, id int64) (*model.Highlight, error) {
	h := &model.Highlight{}
	if err := r.getByID(ctx, h, "highlights", "highlight", id); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *highlightRepository) List(ctx context.Context, activeOnly bool) ([]model.Highlight, error) {
	query := `SELECT * FROM highlights`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	items := []model.Highlight{}
	err := r.conn().SelectContext(ctx, &items, query+` ORDER BY display_order, id`)
	return items, err
}

func (r *highlightRepository) Update(ctx context.Context, h *model.Highlight) error {
	return r.execOne(ctx, "highlight", `UPDATE highlights SET title = :title, subtitle = :subtitle,
		image_url = :image_url, redirect_url = :redirect_url, source_type = :source_type, source_id = :source_id,
		display_order = :display_order, is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, h)
}

func (r *highlightRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "highlights", "highlight", id)
}

func (r *highlightRepository) Reorder(ctx context.Context, items []types.ReorderItem) error {
	return r.reorder(ctx, "highlights", "highlight", items)
}
