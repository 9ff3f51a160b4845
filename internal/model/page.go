package model

import "time"

// PageCategory page grouping
type PageCategory struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  string    `db:"description" json:"description"`
	DisplayOrder int       `db:"display_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Page static content page
type Page struct {
	ID              int64      `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Slug            string     `db:"slug" json:"slug"`
	Content         string     `db:"content" json:"content"`
	Excerpt         string     `db:"excerpt" json:"excerpt"`
	ImageURL        string     `db:"image_url" json:"imageUrl"`
	MetaTitle       string     `db:"meta_title" json:"metaTitle"`
	MetaDescription string     `db:"meta_description" json:"metaDescription"`
	CategoryID      *int64     `db:"category_id" json:"categoryId"`
	IsActive        bool       `db:"is_active" json:"isActive"`
	DisplayOrder    int        `db:"display_order" json:"order"`
	PublishedAt     *time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// PageFilter repository list filter
type PageFilter struct {
	CategoryID int64
	Query      string
	Offset     int
	Limit      int
}
