package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// FeedbackRepository contact form submissions
type FeedbackRepository interface {
	Create(ctx context.Context, f *model.Feedback) error
	GetByID(ctx context.Context, id int64) (*model.Feedback, error)
	List(ctx context.Context, filter model.FeedbackFilter) ([]model.Feedback, int64, error)
	// UpdateStatus writes status, response and responded_at
	UpdateStatus(ctx context.Context, f *model.Feedback) error
	Delete(ctx context.Context, id int64) error
}

type feedbackRepository struct {
	baseRepository
}

// NewFeedbackRepository creates the feedback repository
func NewFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &feedbackRepository{baseRepository{db: db}}
}

func (r *feedbackRepository) Create(ctx context.Context, f *model.Feedback) error {
	id, err := r.insert(ctx, "feedback", `INSERT INTO feedback
		(category, name, email, phone, subject, message, status, response, ip_address)
		VALUES (:category, :name, :email, :phone, :subject, :message, :status, :response, :ip_address)`, f)
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*model.Feedback, error) {
	f := &model.Feedback{}
	if err := r.getByID(ctx, f, "feedback", "feedback", id); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *feedbackRepository) List(ctx context.Context, filter model.FeedbackFilter) ([]model.Feedback, int64, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn().GetContext(ctx, &total, `SELECT COUNT(*) FROM feedback`+clause, args...); err != nil {
		return nil, 0, err
	}

	items := []model.Feedback{}
	err := r.conn().SelectContext(ctx, &items, `SELECT * FROM feedback`+clause+` ORDER BY id DESC LIMIT ? OFFSET ?`,
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *feedbackRepository) UpdateStatus(ctx context.Context, f *model.Feedback) error {
	return r.execOne(ctx, "feedback", `UPDATE feedback SET status = :status, response = :response,
		responded_at = :responded_at, updated_at = CURRENT_TIMESTAMP WHERE id = :id`, f)
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "feedback", "feedback", id)
}
