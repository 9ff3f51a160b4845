package model

import "time"

// FooterSection footer column
type FooterSection struct {
	ID           int64        `db:"id" json:"id"`
	SectionKey   string       `db:"section_key" json:"key"`
	Title        string       `db:"title" json:"title"`
	Type         string       `db:"type" json:"type"`
	DisplayOrder int          `db:"display_order" json:"order"`
	IsActive     bool         `db:"is_active" json:"isActive"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
	Items        []FooterItem `db:"-" json:"items"`
}

// FooterItem link or text row inside a section
type FooterItem struct {
	ID           int64     `db:"id" json:"id"`
	SectionID    int64     `db:"section_id" json:"sectionId"`
	Label        string    `db:"label" json:"label"`
	URL          string    `db:"url" json:"url"`
	Icon         string    `db:"icon" json:"icon"`
	Type         string    `db:"type" json:"type"`
	DisplayOrder int       `db:"display_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
