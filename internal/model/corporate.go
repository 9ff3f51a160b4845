package model

import "time"

// CorporateType kind of corporate content block
type CorporateType string

const (
	CorporateVision   CorporateType = "VISION"
	CorporateMission  CorporateType = "MISSION"
	CorporateStrategy CorporateType = "STRATEGY"
	CorporateGoals    CorporateType = "GOALS"
	CorporateAbout    CorporateType = "ABOUT"
	CorporateCustom   CorporateType = "CUSTOM"
)

// CorporateContent vision, mission and similar blocks
type CorporateContent struct {
	ID           int64         `db:"id" json:"id"`
	Type         CorporateType `db:"type" json:"type"`
	Title        string        `db:"title" json:"title"`
	Subtitle     string        `db:"subtitle" json:"subtitle"`
	Content      string        `db:"content" json:"content"`
	ImageURL     string        `db:"image_url" json:"imageUrl"`
	Icon         string        `db:"icon" json:"icon"`
	DisplayOrder int           `db:"display_order" json:"order"`
	IsActive     bool          `db:"is_active" json:"isActive"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}
