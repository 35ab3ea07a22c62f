package models

import "time"

// ScrollingNews is an announcement ticker item shown on the portal homepage.
type ScrollingNews struct {
	ID        string    `db:"id" json:"_id"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// DashboardCounts aggregates record totals for the admin dashboard.
type DashboardCounts struct {
	Complaints       int `json:"complaints"`
	HealthCamps      int `json:"healthCamps"`
	EventPermissions int `json:"eventPermissions"`
	Citizens         int `json:"citizens"`
}
