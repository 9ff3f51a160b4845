package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// ExecutiveRepository management board storage
type ExecutiveRepository interface {
	Create(ctx context.Context, e *model.Executive) error
	GetByID(ctx context.Context, id int64) (*model.Executive, error)
	List(ctx context.Context, typ model.ExecutiveType, activeOnly bool) ([]model.Executive, error)
	Update(ctx context.Context, e *model.Executive) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type executiveRepository struct {
	baseRepository
}

// NewExecutiveRepository creates the executive repository
func NewExecutiveRepository(db *sqlx.DB) ExecutiveRepository {
	return &executiveRepository{baseRepository{db: db}}
}

func (r *executiveRepository) Create(ctx context.Context, e *model.Executive) error {
	id, err := r.insert(ctx, "executive", `INSERT INTO executives
		(name, title, slug, type, biography, image_url, email, phone, is_active, display_order)
		VALUES (:name, :title, :slug, :type, :biography, :image_url, :email, :phone, :is_active, :display_order)`, e)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *executiveRepository) GetByID(ctx context.Context, id int64) (*model.Executive, error) {
	e := &model.Executive{}
	if err := r.getByID(ctx, e, "executives", "executive", id); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *executiveRepository) List(ctx context.Context, typ model.ExecutiveType, activeOnly bool) ([]model.Executive, error) {
	query := `SELECT * FROM executives WHERE 1 = 1`
	var args []interface{}
	if typ != "" {
		query += ` AND type = ?`
		args = append(args, typ)
	}
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	items := []model.Executive{}
	err := r.conn().SelectContext(ctx, &items, query, args...)
	return items, err
}

func (r *executiveRepository) Update(ctx context.Context, e *model.Executive) error {
	return r.execOne(ctx, "executive", `UPDATE executives SET name = :name, title = :title, slug = :slug, type = :type,
		biography = :biography, image_url = :image_url, email = :email, phone = :phone, is_active = :is_active,
		display_order = :display_order, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, e)
}

func (r *executiveRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "executives", "executive", id)
}

func (r *executiveRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "executives", slug, excludeID)
}
