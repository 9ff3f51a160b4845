package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// UserRepository panel account storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	CountActiveAdmins(ctx context.Context) (int64, error)
}

// TransactionalUserRepository UserRepository that can join a transaction
type TransactionalUserRepository interface {
	UserRepository
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	WithTx(tx *sqlx.Tx) UserRepository
}

type userRepository struct {
	baseRepository
}

// NewUserRepository creates the user repository
func NewUserRepository(db *sqlx.DB) TransactionalUserRepository {
	return &userRepository{baseRepository{db: db}}
}

// WithTx returns a repository bound to tx
func (r *userRepository) WithTx(tx *sqlx.Tx) UserRepository {
	return &userRepository{baseRepository{db: r.db, tx: tx}}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	id, err := r.insert(ctx, "user", `INSERT INTO users (name, email, password, role, is_active)
		VALUES (:name, :email, :password, :role, :is_active)`, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	if err := r.getByID(ctx, user, "users", "user", id); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.conn().GetContext(ctx, user, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, translate(err, "user")
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.execOne(ctx, "user", `UPDATE users SET name = :name, email = :email, password = :password,
		role = :role, is_active = :is_active, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, user)
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.conn().ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, at, id)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "users", "user", id)
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	users := []model.User{}
	err := r.conn().SelectContext(ctx, &users, `SELECT * FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return users, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn().GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}

func (r *userRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn().GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE role = ? AND is_active = TRUE`, model.RoleAdmin)
	return n, err
}
