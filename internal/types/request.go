package types

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (Page-1)*PageSize inside a 32-bit SQL OFFSET
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Pagination query parameters ?page=&pageSize=
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize clamps page and page size to sane bounds
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset row offset for the current page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ReorderItem new position of one row
type ReorderItem struct {
	ID    int64 `json:"id" binding:"required,min=1"`
	Order int   `json:"order" binding:"min=0"`
}

// ReorderRequest body of the reorder endpoints
type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

// CaptchaParams Geetest widget output sent with public forms
type CaptchaParams struct {
	LotNumber     string `json:"lotNumber"`
	CaptchaOutput string `json:"captchaOutput"`
	PassToken     string `json:"passToken"`
	GenTime       string `json:"genTime"`
}

// LoginRequest POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest POST /api/admin/users
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN EDITOR USER"`
	IsActive *bool  `json:"isActive"`
}

// UpdateUserRequest PUT /api/admin/users/:id
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN EDITOR USER"`
	IsActive *bool   `json:"isActive"`
}

// ChangePasswordRequest PUT /api/auth/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// DepartmentRequest create and update body. On update nil fields are left unchanged.
type DepartmentRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=191"`
	Slug        *string  `json:"slug" binding:"omitempty,slug"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	ImageURL    *string  `json:"imageUrl"`
	Icon        *string  `json:"icon"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Address     *string  `json:"address"`
	Services    []string `json:"services"`
	IsActive    *bool    `json:"isActive"`
	Order       *int     `json:"order"`
}

// PersonnelRequest create and update body
type PersonnelRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=191"`
	Title        *string `json:"title"`
	Slug         *string `json:"slug" binding:"omitempty,slug"`
	Type         *string `json:"type" binding:"omitempty,oneof=DIRECTOR CHIEF"`
	Content      *string `json:"content"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	ImageURL     *string `json:"imageUrl"`
	DepartmentID *int64  `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
	Order        *int    `json:"order"`
}

// ExecutiveRequest create and update body
type ExecutiveRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=191"`
	Title     *string `json:"title"`
	Slug      *string `json:"slug" binding:"omitempty,slug"`
	Type      *string `json:"type" binding:"omitempty,oneof=PRESIDENT GENERAL_MANAGER DIRECTOR MANAGER DEPARTMENT"`
	Biography *string `json:"biography"`
	ImageURL  *string `json:"imageUrl"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"isActive"`
	Order     *int    `json:"order"`
}

// BannerGroupRequest create and update body
type BannerGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=191"`
	Description *string `json:"description"`
	Width       *int    `json:"width" binding:"omitempty,min=0"`
	Height      *int    `json:"height" binding:"omitempty,min=0"`
	Animation   *string `json:"animation" binding:"omitempty,oneof=FADE SLIDE ZOOM NONE"`
	DurationMs  *int    `json:"durationMs" binding:"omitempty,min=500"`
	IsActive    *bool   `json:"isActive"`
}

// BannerRequest create and update body
type BannerRequest struct {
	BannerGroupID *int64     `json:"bannerGroupId" binding:"omitempty,min=1"`
	Title         *string    `json:"title" binding:"omitempty,min=1,max=191"`
	Description   *string    `json:"description"`
	ImageURL      *string    `json:"imageUrl" binding:"omitempty,min=1"`
	LinkURL       *string    `json:"linkUrl"`
	AltText       *string    `json:"altText"`
	Order         *int       `json:"order"`
	IsActive      *bool      `json:"isActive"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	ClearSchedule bool       `json:"clearSchedule"`
}

// BannerPositionRequest create and update body
type BannerPositionRequest struct {
	PositionUUID    *string `json:"positionUuid" binding:"omitempty,uuid"`
	Name            *string `json:"name" binding:"omitempty,min=1,max=191"`
	Description     *string `json:"description"`
	BannerGroupID   *int64  `json:"bannerGroupId"`
	FallbackGroupID *int64  `json:"fallbackGroupId"`
	IsActive        *bool   `json:"isActive"`
}

// CategoryRequest shared by news and page categories
type CategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=191"`
	Slug        *string `json:"slug" binding:"omitempty,slug"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// TagRequest create and update body
type TagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"omitempty,slug"`
}

// NewsRequest create and update body. TagIDs replaces the tag set when not nil.
type NewsRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Slug        *string    `json:"slug" binding:"omitempty,slug"`
	Summary     *string    `json:"summary"`
	Content     *string    `json:"content"`
	ImageURL    *string    `json:"imageUrl"`
	CategoryID  *int64     `json:"categoryId" binding:"omitempty,min=1"`
	Status      *string    `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED SCHEDULED"`
	PublishedAt *time.Time `json:"publishedAt"`
	ReadTime    *int       `json:"readTime" binding:"omitempty,min=0"`
	TagIDs      []int64    `json:"tagIds" binding:"omitempty,dive,min=1"`
}

// NewsQuery admin and public list filters
type NewsQuery struct {
	Pagination
	CategoryID   int64  `form:"categoryId"`
	CategorySlug string `form:"category"`
	Status       string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED SCHEDULED"`
	Query        string `form:"q"`
	TagSlug      string `form:"tag"`
}

// PageRequest create and update body
type PageRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Slug            *string    `json:"slug" binding:"omitempty,slug"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	ImageURL        *string    `json:"imageUrl"`
	MetaTitle       *string    `json:"metaTitle" binding:"omitempty,max=255"`
	MetaDescription *string    `json:"metaDescription" binding:"omitempty,max=500"`
	CategoryID      *int64     `json:"categoryId"`
	IsActive        *bool      `json:"isActive"`
	Order           *int       `json:"order"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

// PageQuery admin list filters
type PageQuery struct {
	Pagination
	CategoryID int64  `form:"categoryId"`
	Query      string `form:"q"`
}

// MediaCategoryRequest create and update body
type MediaCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=191"`
	Slug  *string `json:"slug" binding:"omitempty,slug"`
	Order *int    `json:"order"`
}

// MediaUpdateRequest PUT /api/admin/media/:id
type MediaUpdateRequest struct {
	AltText    *string `json:"altText" binding:"omitempty,max=255"`
	Caption    *string `json:"caption"`
	CategoryID *int64  `json:"categoryId"`
}

// MediaQuery admin list filters
type MediaQuery struct {
	Pagination
	CategoryID int64  `form:"categoryId"`
	MimePrefix string `form:"type"`
	Query      string `form:"q"`
}

// CorporateContentRequest create and update body
type CorporateContentRequest struct {
	Type     *string `json:"type" binding:"omitempty,oneof=VISION MISSION STRATEGY GOALS ABOUT CUSTOM"`
	Title    *string `json:"title" binding:"omitempty,min=1,max=255"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// FooterSectionRequest create and update body
type FooterSectionRequest struct {
	Key      *string `json:"key" binding:"omitempty,slug"`
	Title    *string `json:"title" binding:"omitempty,min=1,max=191"`
	Type     *string `json:"type" binding:"omitempty,oneof=LINKS CONTACT SOCIAL TEXT"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// FooterItemRequest create and update body
type FooterItemRequest struct {
	SectionID *int64  `json:"sectionId" binding:"omitempty,min=1"`
	Label     *string `json:"label" binding:"omitempty,min=1,max=191"`
	URL       *string `json:"url"`
	Icon      *string `json:"icon"`
	Type      *string `json:"type" binding:"omitempty,oneof=LINK EMAIL PHONE ADDRESS SOCIAL TEXT"`
	Order     *int    `json:"order"`
	IsActive  *bool   `json:"isActive"`
}

// QuickAccessLinkRequest create and update body
type QuickAccessLinkRequest struct {
	ModuleType *string `json:"moduleType" binding:"omitempty,moduletype"`
	ModuleID   *int64  `json:"moduleId" binding:"omitempty,min=1"`
	Title      *string `json:"title" binding:"omitempty,min=1,max=191"`
	URL        *string `json:"url" binding:"omitempty,min=1"`
	Icon       *string `json:"icon"`
	Order      *int    `json:"order"`
	IsActive   *bool   `json:"isActive"`
}

// HighlightRequest create and update body
type HighlightRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=191"`
	Subtitle    *string `json:"subtitle"`
	ImageURL    *string `json:"imageUrl"`
	RedirectURL *string `json:"redirectUrl"`
	SourceType  *string `json:"sourceType" binding:"omitempty,oneof=CUSTOM NEWS PAGE PROJECT DEPARTMENT"`
	SourceID    *int64  `json:"sourceId"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// GalleryRequest create and update body. ParentID 0 moves the gallery to the root.
type GalleryRequest struct {
	ParentID      *int64  `json:"parentId" binding:"omitempty,min=0"`
	Title         *string `json:"title" binding:"omitempty,min=1,max=191"`
	Slug          *string `json:"slug" binding:"omitempty,slug"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"coverImageUrl"`
	Order         *int    `json:"order"`
	IsActive      *bool   `json:"isActive"`
}

// GalleryItemRequest POST /api/admin/galleries/:id/items
type GalleryItemRequest struct {
	MediaID int64  `json:"mediaId" binding:"required,min=1"`
	Title   string `json:"title" binding:"max=191"`
	Order   int    `json:"order"`
}

// FeedbackRequest public feedback form
type FeedbackRequest struct {
	Category string        `json:"category" binding:"required,oneof=COMPLAINT SUGGESTION REQUEST THANKS OTHER"`
	Name     string        `json:"name" binding:"required,max=191"`
	Email    string        `json:"email" binding:"required,email,max=191"`
	Phone    string        `json:"phone" binding:"max=50"`
	Subject  string        `json:"subject" binding:"required,max=255"`
	Message  string        `json:"message" binding:"required,max=5000"`
	Captcha  CaptchaParams `json:"captcha"`
}

// FeedbackStatusRequest PATCH /api/admin/feedback/:id/status
type FeedbackStatusRequest struct {
	Status   string  `json:"status" binding:"required,oneof=NEW IN_PROGRESS RESOLVED CLOSED"`
	Response *string `json:"response"`
}

// FeedbackQuery admin list filters
type FeedbackQuery struct {
	Pagination
	Status   string `form:"status" binding:"omitempty,oneof=NEW IN_PROGRESS RESOLVED CLOSED"`
	Category string `form:"category" binding:"omitempty,oneof=COMPLAINT SUGGESTION REQUEST THANKS OTHER"`
}
