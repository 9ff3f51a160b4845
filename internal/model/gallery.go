package model

import "time"

// Gallery photo album, possibly nested under a parent
type Gallery struct {
	ID            int64         `db:"id" json:"id"`
	ParentID      *int64        `db:"parent_id" json:"parentId"`
	Title         string        `db:"title" json:"title"`
	Slug          string        `db:"slug" json:"slug"`
	Description   string        `db:"description" json:"description"`
	CoverImageURL string        `db:"cover_image_url" json:"coverImageUrl"`
	DisplayOrder  int           `db:"display_order" json:"order"`
	IsActive      bool          `db:"is_active" json:"isActive"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
	Items         []GalleryItem `db:"-" json:"items,omitempty"`
}

// GalleryItem media file placed in a gallery, joined with its URL
type GalleryItem struct {
	ID           int64     `db:"id" json:"id"`
	GalleryID    int64     `db:"gallery_id" json:"galleryId"`
	MediaID      int64     `db:"media_id" json:"mediaId"`
	Title        string    `db:"title" json:"title"`
	DisplayOrder int       `db:"display_order" json:"order"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	URL          string    `db:"url" json:"url"`
	MimeType     string    `db:"mime_type" json:"mimeType"`
	AltText      string    `db:"alt_text" json:"altText"`
}

// GalleryNode gallery with its sub-galleries
type GalleryNode struct {
	Gallery
	Children []*GalleryNode `json:"children"`
}
