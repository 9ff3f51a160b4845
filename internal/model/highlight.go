package model

import "time"

// Highlight homepage card pointing at a piece of content or a custom URL
type Highlight struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Subtitle     string    `db:"subtitle" json:"subtitle"`
	ImageURL     string    `db:"image_url" json:"imageUrl"`
	RedirectURL  string    `db:"redirect_url" json:"redirectUrl"`
	SourceType   string    `db:"source_type" json:"sourceType"`
	SourceID     *int64    `db:"source_id" json:"sourceId"`
	DisplayOrder int       `db:"display_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
