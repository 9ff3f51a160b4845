package model

import "time"

// HealthStatus readiness of the service and its backing stores
type HealthStatus struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Redis    string    `json:"redis"`
	Mail     string    `json:"mail"`
	Time     time.Time `json:"time"`
}

// Healthy reports whether every dependency answered
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}
