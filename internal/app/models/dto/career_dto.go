package dto

// JobRequest represents job creation or update data. Field presence is
// checked after trimming in the service layer so that every missing field
// can be named at once.
type JobRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ApplicationRequest represents a public job application submission
type ApplicationRequest struct {
	JobID       *int64 `json:"jobId,omitempty"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Portfolio   string `json:"portfolio,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
	CoverLetter string `json:"coverLetter"`
}

// ApplicationResponse acknowledges a stored application
type ApplicationResponse struct {
	ApplicationID int64 `json:"applicationId"`
}

// DeleteJobResponse reports whether a delete removed a row
type DeleteJobResponse struct {
	Deleted bool `json:"deleted"`
}
