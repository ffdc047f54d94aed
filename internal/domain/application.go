package domain

import "time"

// ApplicationStatus represents the stage of a job application.
// Values include StatusApplied, StatusResponded, StatusInterview,
// StatusRejected, and StatusOffer.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusResponded ApplicationStatus = "Responded"
	StatusInterview ApplicationStatus = "Interview"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusOffer     ApplicationStatus = "Offer"
)

// ApplicationStatuses lists the allowed status values in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusResponded,
	StatusInterview,
	StatusRejected,
	StatusOffer,
}

// ValidStatus reports whether s is one of the enumerated application statuses.
func ValidStatus(s ApplicationStatus) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application represents one tracked job application. Records are created
// either from the manual quick-add flow or by confirming a search listing.
type Application struct {
	ID            string            `gorm:"type:text;primaryKey" json:"id"`
	DateApplied   time.Time         `gorm:"index:idx_applications_date" json:"date_applied"`
	Company       string            `gorm:"type:text;not null" json:"company"`
	JobTitle      string            `gorm:"type:text;not null" json:"job_title"`
	URL           string            `gorm:"type:text" json:"url,omitempty"`
	ResumeVersion string            `gorm:"type:text" json:"resume_version"`
	Status        ApplicationStatus `gorm:"type:text;index:idx_applications_status;default:Applied" json:"status"`
	Source        string            `gorm:"type:text" json:"source,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	FollowUpDate  *time.Time        `json:"follow_up_date,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ApplicationFilters narrows application list queries. Zero values are ignored.
type ApplicationFilters struct {
	Status        string
	Source        string
	Company       string
	ResumeVersion string
}
