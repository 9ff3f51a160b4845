package model

import "time"

// PersonnelType role of a person inside a department
type PersonnelType string

const (
	PersonnelDirector PersonnelType = "DIRECTOR"
	PersonnelChief    PersonnelType = "CHIEF"
)

// ExecutiveType management level
type ExecutiveType string

const (
	ExecutivePresident      ExecutiveType = "PRESIDENT"
	ExecutiveGeneralManager ExecutiveType = "GENERAL_MANAGER"
	ExecutiveDirector       ExecutiveType = "DIRECTOR"
	ExecutiveManager        ExecutiveType = "MANAGER"
	ExecutiveDepartment     ExecutiveType = "DEPARTMENT"
)

// Department municipal company unit. Services is stored as a JSON array.
type Department struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  string    `db:"description" json:"description"`
	Content      string    `db:"content" json:"content"`
	ImageURL     string    `db:"image_url" json:"imageUrl"`
	Icon         string    `db:"icon" json:"icon"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	Address      string    `db:"address" json:"address"`
	ServicesRaw  string    `db:"services" json:"-"`
	Services     []string  `db:"-" json:"services"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	DisplayOrder int       `db:"display_order" json:"order"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// DepartmentDetail department page with its director and chiefs
type DepartmentDetail struct {
	Department
	Director *Personnel  `json:"director"`
	Chiefs   []Personnel `json:"chiefs"`
}

// Personnel department director or chief
type Personnel struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Title        string        `db:"title" json:"title"`
	Slug         string        `db:"slug" json:"slug"`
	Type         PersonnelType `db:"type" json:"type"`
	Content      string        `db:"content" json:"content"`
	Phone        string        `db:"phone" json:"phone"`
	Email        string        `db:"email" json:"email"`
	ImageURL     string        `db:"image_url" json:"imageUrl"`
	DepartmentID *int64        `db:"department_id" json:"departmentId"`
	IsActive     bool          `db:"is_active" json:"isActive"`
	DisplayOrder int           `db:"display_order" json:"order"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}

// PersonnelFilter list filters
type PersonnelFilter struct {
	DepartmentID int64
	Type         PersonnelType
	ActiveOnly   bool
}

// Executive member of the management board
type Executive struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Title        string        `db:"title" json:"title"`
	Slug         string        `db:"slug" json:"slug"`
	Type         ExecutiveType `db:"type" json:"type"`
	Biography    string        `db:"biography" json:"biography"`
	ImageURL     string        `db:"image_url" json:"imageUrl"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	IsActive     bool          `db:"is_active" json:"isActive"`
	DisplayOrder int           `db:"display_order" json:"order"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}
