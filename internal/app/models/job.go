package models

import "time"

// Job represents a posted open role on the careers page
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobFields holds the mutable fields of a job posting. The identifier and
// creation timestamp are always store-assigned.
type JobFields struct {
	Title       string
	Department  string
	Location    string
	Type        string
	Description string
}
