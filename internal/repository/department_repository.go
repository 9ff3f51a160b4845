package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// DepartmentRepository department storage
type DepartmentRepository interface {
	Create(ctx context.Context, d *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	GetBySlug(ctx context.Context, slug string) (*model.Department, error)
	List(ctx context.Context, activeOnly bool) ([]model.Department, error)
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id int64) error
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
}

type departmentRepository struct {
	baseRepository
}

// NewDepartmentRepository creates the department repository
func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{baseRepository{db: db}}
}

func (r *departmentRepository) Create(ctx context.Context, d *model.Department) error {
	id, err := r.insert(ctx, "department", `INSERT INTO departments
		(name, slug, description, content, image_url, icon, phone, email, address, services, is_active, display_order)
		VALUES (:name, :slug, :description, :content, :image_url, :icon, :phone, :email, :address, :services, :is_active, :display_order)`, d)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	d := &model.Department{}
	if err := r.getByID(ctx, d, "departments", "department", id); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *departmentRepository) GetBySlug(ctx context.Context, slug string) (*model.Department, error) {
	d := &model.Department{}
	if err := r.conn().GetContext(ctx, d, `SELECT * FROM departments WHERE slug = ?`, slug); err != nil {
		return nil, translate(err, "department")
	}
	return d, nil
}

func (r *departmentRepository) List(ctx context.Context, activeOnly bool) ([]model.Department, error) {
	query := `SELECT * FROM departments`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	items := []model.Department{}
	err := r.conn().SelectContext(ctx, &items, query)
	return items, err
}

func (r *departmentRepository) Update(ctx context.Context, d *model.Department) error {
	return r.execOne(ctx, "department", `UPDATE departments SET name = :name, slug = :slug, description = :description,
		content = :content, image_url = :image_url, icon = :icon, phone = :phone, email = :email, address = :address,
		services = :services, is_active = :is_active, display_order = :display_order, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`, d)
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "departments", "department", id)
}

func (r *departmentRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return r.slugTaken(ctx, "departments", slug, excludeID)
}
