package model

// DashboardStats row counts shown on the admin dashboard
type DashboardStats struct {
	News          int64 `db:"news" json:"news"`
	PublishedNews int64 `db:"published_news" json:"publishedNews"`
	Pages         int64 `db:"pages" json:"pages"`
	Media         int64 `db:"media" json:"media"`
	NewFeedback   int64 `db:"new_feedback" json:"newFeedback"`
	Departments   int64 `db:"departments" json:"departments"`
	Personnel     int64 `db:"personnel" json:"personnel"`
	Users         int64 `db:"users" json:"users"`
}
