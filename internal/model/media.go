package model

import "time"

// MediaCategory upload folder. Built-in categories are seeded by migration and cannot be deleted.
type MediaCategory struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	IsBuiltIn    bool      `db:"is_built_in" json:"isBuiltIn"`
	DisplayOrder int       `db:"display_order" json:"order"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Media uploaded file. Path is relative to the upload directory.
type Media struct {
	ID           int64     `db:"id" json:"id"`
	CategoryID   *int64    `db:"category_id" json:"categoryId"`
	Filename     string    `db:"filename" json:"filename"`
	OriginalName string    `db:"original_name" json:"originalName"`
	MimeType     string    `db:"mime_type" json:"mimeType"`
	Size         int64     `db:"size" json:"size"`
	Path         string    `db:"path" json:"path"`
	URL          string    `db:"url" json:"url"`
	AltText      string    `db:"alt_text" json:"altText"`
	Caption      string    `db:"caption" json:"caption"`
	UploadedBy   *int64    `db:"uploaded_by" json:"uploadedBy"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// MediaFilter repository list filter
type MediaFilter struct {
	CategoryID int64
	MimePrefix string
	Query      string
	Offset     int
	Limit      int
}
