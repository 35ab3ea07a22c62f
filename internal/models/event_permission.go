package models

import "time"

// EventPermission is a citizen request to hold a public event.
type EventPermission struct {
	ID                string    `db:"id" json:"-"`
	EventPermissionID string    `db:"event_permission_id" json:"EventpermissionId"`
	Username          string    `db:"username" json:"username"`
	EventName         string    `db:"event_name" json:"eventName"`
	OrganizerName     string    `db:"organizer_name" json:"organizerName"`
	OrganizerContact  string    `db:"organizer_contact" json:"organizerContact"`
	OrganizerEmail    string    `db:"organizer_email" json:"organizerEmail"`
	EventDate         string    `db:"event_date" json:"eventDate"`
	EventTime         string    `db:"event_time" json:"eventTime"`
	EventLocation     string    `db:"event_location" json:"eventLocation"`
	ExpectedGathering int       `db:"expected_gathering" json:"expectedGathering"`
	EventDescription  string    `db:"event_description" json:"eventDescription"`
	SpecialRequests   string    `db:"special_requests" json:"specialRequests"`
	UploadDoc         *string   `db:"upload_doc" json:"uploadDoc"`
	Status            string    `db:"status" json:"status"`
	StatusDescription string    `db:"status_description" json:"status_description"`
	SubmittedAt       time.Time `db:"submitted_at" json:"timestamp"`
}

// EventPermissionFilter narrows event-permission listings. From/To apply to
// the event date (ISO dates compare lexically).
type EventPermissionFilter struct {
	Username string
	From     string
	To       string
}
