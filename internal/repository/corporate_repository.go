package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
	"kentkonut/internal/types"
)

// CorporateContentRepository vision, mission and similar blocks
type CorporateContentRepository interface {
	Create(ctx context.Context, c *model.CorporateContent) error
	GetByID(ctx context.Context, id int64) (*model.CorporateContent, error)
	// List filters by type when typ is non-empty
	List(ctx context.Context, typ model.CorporateType, activeOnly bool) ([]model.CorporateContent, error)
	Update(ctx context.Context, c *model.CorporateContent) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, items []types.ReorderItem) error
}

type corporateContentRepository struct {
	baseRepository
}

// NewCorporateContentRepository creates the corporate content repository
func NewCorporateContentRepository(db *sqlx.DB) CorporateContentRepository {
	return &corporateContentRepository{baseRepository{db: db}}
}

func (r *corporateContentRepository) Create(ctx context.Context, c *model.CorporateContent) error {
	id, err := r.insert(ctx, "corporate content", `INSERT INTO corporate_contents
		(type, title, subtitle, content, image_url, icon, display_order, is_active)
		VALUES (:type, :title, :subtitle, :content, :image_url, :icon, :display_order, :is_active)`, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *corporateContentRepository) GetByID(ctx context.Context, id int64) (*model.CorporateContent, error) {
	c := &model.CorporateContent{}
	if err := r.getByID(ctx, c, "corporate_contents", "corporate content", id); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *corporateContentRepository) List(ctx context.Context, typ model.CorporateType, activeOnly bool) ([]model.CorporateContent, error) {
	query := `SELECT * FROM corporate_contents WHERE 1 = 1`
	var args []interface{}
	if typ != "" {
		query += ` AND type = ?`
		args = append(args, typ)
	}
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	items := []model.CorporateContent{}
	err := r.conn().SelectContext(ctx, &items, query+` ORDER BY display_order, id`, args...)
	return items, err
}

func (r *corporateContentRepository) Update(ctx context.Context, c *model.CorporateContent) error {
	return r.execOne(ctx, "corporate content", `UPDATE corporate_contents SET type = :type, title = :title,
		subtitle = :subtitle, content = :content, image_url = :image_url, icon = :icon,
		display_order = :display_order, is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, c)
}

func (r *corporateContentRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "corporate_contents", "corporate content", id)
}

func (r *corporateContentRepository) Reorder(ctx context.Context, items []types.ReorderItem) error {
	return r.reorder(ctx, "corporate_contents", "corporate content", items)
}
