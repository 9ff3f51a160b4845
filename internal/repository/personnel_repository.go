package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// PersonnelRepository directors and chiefs
type PersonnelRepository interface {
	Create(ctx context.Context, p *model.Personnel) error
	GetByID(ctx context.Context, id int64) (*model.Personnel, error)
	List(ctx context.Context, filter model.PersonnelFilter) ([]model.Personnel, error)
	Update(ctx context.Context, p *model.Personnel) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type personnelRepository struct {
	baseRepository
}

// NewPersonnelRepository creates the personnel repository
func NewPersonnelRepository(db *sqlx.DB) PersonnelRepository {
	return &personnelRepository{baseRepository{db: db}}
}

func (r *personnelRepository) Create(ctx context.Context, p *model.Personnel) error {
	id, err := r.insert(ctx, "personnel", `INSERT INTO personnel
		(name, title, slug, type, content, phone, email, image_url, department_id, is_active, display_order)
		VALUES (:name, :title, :slug, :type, :content, :phone, :email, :image_url, :department_id, :is_active, :display_order)`, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *personnelRepository) GetByID(ctx context.Context, id int64) (*model.Personnel, error) {
	p := &model.Personnel{}
	if err := r.getByID(ctx, p, "personnel", "personnel", id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *personnelRepository) List(ctx context.Context, filter model.PersonnelFilter) ([]model.Personnel, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.DepartmentID > 0 {
		where = append(where, "department_id = ?")
		args = append(args, filter.DepartmentID)
	}
	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}

	query := `SELECT * FROM personnel`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` ORDER BY display_order, id`

	items := []model.Personnel{}
	err := r.conn().SelectContext(ctx, &items, query, args...)
	return items, err
}

func (r *personnelRepository) Update(ctx context.Context, p *model.Personnel) error {
	return r.execOne(ctx, "personnel", `UPDATE personnel SET name = :name, title = :title, slug = :slug, type = :type,
		content = :content, phone = :phone, email = :email, image_url = :image_url, department_id = :department_id,
		is_active = :is_active, display_order = :display_order, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, p)
}

func (r *personnelRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "personnel", "personnel", id)
}

func (r *personnelRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "personnel", slug, excludeID)
}
