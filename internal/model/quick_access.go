package model

import "time"

// ModuleType content module a quick access link belongs to
type ModuleType string

const (
	ModulePage       ModuleType = "page"
	ModuleNews       ModuleType = "news"
	ModuleProject    ModuleType = "project"
	ModuleDepartment ModuleType = "department"
)

// ModuleTypes every accepted module type
var ModuleTypes = []ModuleType{ModulePage, ModuleNews, ModuleProject, ModuleDepartment}

// Valid reports whether m is a known module type
func (m ModuleType) Valid() bool {
	for _, t := range ModuleTypes {
		if m == t {
			return true
		}
	}
	return false
}

// QuickAccessLink shortcut shown next to a page, news item, project or department
type QuickAccessLink struct {
	ID           int64      `db:"id" json:"id"`
	ModuleType   ModuleType `db:"module_type" json:"moduleType"`
	ModuleID     int64      `db:"module_id" json:"moduleId"`
	Title        string     `db:"title" json:"title"`
	URL          string     `db:"url" json:"url"`
	Icon         string     `db:"icon" json:"icon"`
	DisplayOrder int        `db:"display_order" json:"order"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
