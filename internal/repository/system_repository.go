package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kentkonut/internal/model"
)

// SystemRepository dashboard counters
type SystemRepository struct {
	db *sqlx.DB
}

// NewSystemRepository creates the dashboard repository
func NewSystemRepository(db *sqlx.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// GetDashboardStats counts content rows in a single round trip
func (r *SystemRepository) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	err := r.db.GetContext(ctx, &stats, `SELECT
		(SELECT COUNT(*) FROM news) AS news,
		(SELECT COUNT(*) FROM news WHERE status = 'PUBLISHED') AS published_news,
		(SELECT COUNT(*) FROM pages) AS pages,
		(SELECT COUNT(*) FROM media) AS media,
		(SELECT COUNT(*) FROM feedback WHERE status = 'NEW') AS new_feedback,
		(SELECT COUNT(*) FROM departments) AS departments,
		(SELECT COUNT(*) FROM personnel) AS personnel,
		(SELECT COUNT(*) FROM users) AS users`)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Ping checks database connectivity
func (r *SystemRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
