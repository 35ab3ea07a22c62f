package models

import "time"

// HealthCampRequest is an organization's request to conduct a health camp.
type HealthCampRequest struct {
	ID                string    `db:"id" json:"-"`
	HealthCampID      string    `db:"health_camp_id" json:"HealthcampId"`
	Username          string    `db:"username" json:"username"`
	OrgName           string    `db:"org_name" json:"orgName"`
	ContactPerson     string    `db:"contact_person" json:"contactPerson"`
	ContactNumber     string    `db:"contact_number" json:"contactNumber"`
	Email             string    `db:"email" json:"email"`
	CampTitle         string    `db:"camp_title" json:"campTitle"`
	CampPurpose       string    `db:"camp_purpose" json:"campPurpose"`
	Services          string    `db:"services" json:"services"`
	DoctorsCount      int       `db:"doctors_count" json:"doctorsCount"`
	CampDate          string    `db:"camp_date" json:"campDate"`
	Duration          string    `db:"duration" json:"duration"`
	Location          string    `db:"location" json:"location"`
	GovtCollab        string    `db:"govt_collab" json:"govtCollab"`
	Remarks           string    `db:"remarks" json:"remarks"`
	UploadProposal    *string   `db:"upload_proposal" json:"uploadProposal"`
	Status            string    `db:"status" json:"status"`
	StatusDescription string    `db:"status_description" json:"status_description"`
	SubmittedAt       time.Time `db:"submitted_at" json:"timestamp"`
}

// HealthCampFilter narrows health-camp listings. The citizen view filters on
// status and submission time; the admin view filters on the camp date.
type HealthCampFilter struct {
	Username     string
	Status       string
	From         *time.Time
	To           *time.Time
	CampDateFrom string
	CampDateTo   string
}
