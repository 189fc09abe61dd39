package models

import "time"

// Application represents a candidate's submission. JobID is a weak
// reference: deleting the job leaves the application behind with a null
// reference, it never cascades.
type Application struct {
	ID          int64     `json:"id"`
	JobID       *int64    `json:"jobId,omitempty"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Portfolio   string    `json:"portfolio,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	CoverLetter string    `json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApplicationFields holds the caller-supplied fields of an application.
type ApplicationFields struct {
	JobID       *int64
	FullName    string
	Email       string
	Phone       string
	Portfolio   string
	ResumeURL   string
	CoverLetter string
}
