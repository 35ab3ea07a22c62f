package models

import "time"

// Complaint is a citizen-submitted grievance record.
type Complaint struct {
	ID                string    `db:"id" json:"-"`
	ComplaintID       string    `db:"complaint_id" json:"ComplaintId"`
	Username          string    `db:"username" json:"username"`
	Subject           string    `db:"subject" json:"subject"`
	Category          string    `db:"category" json:"category"`
	Description       string    `db:"description" json:"description"`
	Location          string    `db:"location" json:"location"`
	Ward              string    `db:"ward" json:"ward"`
	ImagePath         *string   `db:"image_path" json:"imagePath"`
	Status            string    `db:"status" json:"status"`
	StatusDescription string    `db:"status_description" json:"status_description"`
	SubmittedAt       time.Time `db:"submitted_at" json:"submittedAt"`
}

// ComplaintFilter narrows complaint listings. Username scopes citizen views;
// the admin view filters on ward and submission-date range instead.
type ComplaintFilter struct {
	Username string
	Status   string
	Ward     string
	From     *time.Time
	To       *time.Time
}
