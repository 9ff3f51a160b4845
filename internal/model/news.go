package model

import "time"

// NewsStatus publication state
type NewsStatus string

const (
	NewsDraft     NewsStatus = "DRAFT"
	NewsPublished NewsStatus = "PUBLISHED"
	NewsScheduled NewsStatus = "SCHEDULED"
)

// NewsCategory news grouping
type NewsCategory struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  string    `db:"description" json:"description"`
	DisplayOrder int       `db:"display_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Tag free-form news label
type Tag struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// News article
type News struct {
	ID          int64         `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Slug        string        `db:"slug" json:"slug"`
	Summary     string        `db:"summary" json:"summary"`
	Content     string        `db:"content" json:"content"`
	ImageURL    string        `db:"image_url" json:"imageUrl"`
	CategoryID  int64         `db:"category_id" json:"categoryId"`
	AuthorID    *int64        `db:"author_id" json:"authorId"`
	Status      NewsStatus    `db:"status" json:"status"`
	PublishedAt *time.Time    `db:"published_at" json:"publishedAt"`
	ReadTime    int           `db:"read_time" json:"readTime"`
	ViewCount   int64         `db:"view_count" json:"viewCount"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
	Category    *NewsCategory `db:"-" json:"category,omitempty"`
	Tags        []Tag         `db:"-" json:"tags"`
}

// NewsFilter repository list filter
type NewsFilter struct {
	CategoryID   int64
	CategorySlug string
	TagSlug      string
	Status       NewsStatus
	Query        string
	Offset       int
	Limit        int
}
