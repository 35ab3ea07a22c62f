package models

// SubmitComplaintRequest is the multipart form body of a complaint
// submission. The optional image file is handled separately.
type SubmitComplaintRequest struct {
	Subject     string `form:"subject" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description" validate:"required"`
	Location    string `form:"location"`
	Ward        string `form:"ward"`
}

// SubmitEventPermissionRequest is the multipart form body of an
// event-permission submission.
type SubmitEventPermissionRequest struct {
	EventName         string `form:"eventName" validate:"required"`
	OrganizerName     string `form:"organizerName" validate:"required"`
	OrganizerContact  string `form:"organizerContact" validate:"required"`
	OrganizerEmail    string `form:"organizerEmail"`
	EventDate         string `form:"eventDate" validate:"required"`
	EventTime         string `form:"eventTime"`
	EventLocation     string `form:"eventLocation" validate:"required"`
	ExpectedGathering int    `form:"expectedGathering"`
	EventDescription  string `form:"eventDescription"`
	SpecialRequests   string `form:"specialRequests"`
}

// SubmitHealthCampRequest is the multipart form body of a health-camp
// submission.
type SubmitHealthCampRequest struct {
	OrgName       string `form:"orgName" validate:"required"`
	ContactPerson string `form:"contactPerson" validate:"required"`
	ContactNumber string `form:"contactNumber" validate:"required"`
	Email         string `form:"email"`
	CampTitle     string `form:"campTitle" validate:"required"`
	CampPurpose   string `form:"campPurpose"`
	Services      string `form:"services"`
	DoctorsCount  int    `form:"doctorsCount"`
	CampDate      string `form:"campDate" validate:"required"`
	Duration      string `form:"duration"`
	Location      string `form:"location" validate:"required"`
	GovtCollab    string `form:"govtCollab"`
	Remarks       string `form:"Remarks"`
}

// UpdateStatusRequest is the admin transition payload shared by all
// record kinds.
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Description string `json:"description"`
}
