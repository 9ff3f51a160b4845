package model

import "time"

// FeedbackStatus processing state
type FeedbackStatus string

const (
	FeedbackNew        FeedbackStatus = "NEW"
	FeedbackInProgress FeedbackStatus = "IN_PROGRESS"
	FeedbackResolved   FeedbackStatus = "RESOLVED"
	FeedbackClosed     FeedbackStatus = "CLOSED"
)

// Feedback citizen message from the contact form
type Feedback struct {
	ID          int64          `db:"id" json:"id"`
	Category    string         `db:"category" json:"category"`
	Name        string         `db:"name" json:"name"`
	Email       string         `db:"email" json:"email"`
	Phone       string         `db:"phone" json:"phone"`
	Subject     string         `db:"subject" json:"subject"`
	Message     string         `db:"message" json:"message"`
	Status      FeedbackStatus `db:"status" json:"status"`
	Response    string         `db:"response" json:"response"`
	IPAddress   string         `db:"ip_address" json:"ipAddress"`
	RespondedAt *time.Time     `db:"responded_at" json:"respondedAt"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// FeedbackFilter repository list filter
type FeedbackFilter struct {
	Status   FeedbackStatus
	Category string
	Offset   int
	Limit    int
}
