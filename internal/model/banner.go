package model

import "time"

// BannerGroup slider shown at one or more positions
type BannerGroup struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Width       int       `db:"width" json:"width"`
	Height      int       `db:"height" json:"height"`
	Animation   string    `db:"animation" json:"animation"`
	DurationMs  int       `db:"duration_ms" json:"durationMs"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
	Banners     []Banner  `db:"-" json:"banners,omitempty"`
}

// BannerPosition stable slot on the public site addressed by UUID
type BannerPosition struct {
	ID              int64     `db:"id" json:"id"`
	PositionUUID    string    `db:"position_uuid" json:"positionUuid"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	BannerGroupID   *int64    `db:"banner_group_id" json:"bannerGroupId"`
	FallbackGroupID *int64    `db:"fallback_group_id" json:"fallbackGroupId"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// Banner single slide. A nil StartDate or EndDate leaves that side of the window open.
type Banner struct {
	ID            int64      `db:"id" json:"id"`
	BannerGroupID int64      `db:"banner_group_id" json:"bannerGroupId"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	ImageURL      string     `db:"image_url" json:"imageUrl"`
	LinkURL       string     `db:"link_url" json:"linkUrl"`
	AltText       string     `db:"alt_text" json:"altText"`
	DisplayOrder  int        `db:"display_order" json:"order"`
	IsActive      bool       `db:"is_active" json:"isActive"`
	StartDate     *time.Time `db:"start_date" json:"startDate"`
	EndDate       *time.Time `db:"end_date" json:"endDate"`
	ViewCount     int64      `db:"view_count" json:"viewCount"`
	ClickCount    int64      `db:"click_count" json:"clickCount"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// IsLive reports whether the banner is active and inside its schedule at t
func (b *Banner) IsLive(t time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && t.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && t.After(*b.EndDate) {
		return false
	}
	return true
}

// LiveBanners the banners of list that are live at t, order kept
func LiveBanners(list []Banner, t time.Time) []Banner {
	live := make([]Banner, 0, len(list))
	for i := range list {
		if list[i].IsLive(t) {
			live = append(live, list[i])
		}
	}
	return live
}

// PositionBanners public payload for GET /api/public/banners/position/:uuid
type PositionBanners struct {
	PositionUUID string       `json:"positionUuid"`
	PositionName string       `json:"positionName"`
	Group        *BannerGroup `json:"group"`
	Banners      []Banner     `json:"banners"`
	UsedFallback bool         `json:"usedFallback"`
}
