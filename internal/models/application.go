package models

import "time"

// Application statuses. The pending state is the only one a new application
// can have; accepted and rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ApplicationDB represents a job application in the database
type ApplicationDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	JobID        int64     `json:"job_id" db:"job_id"`               // Applied-to job
	FreelancerID int64     `json:"freelancer_id" db:"freelancer_id"` // Applying freelancer
	CoverLetter  string    `json:"cover_letter" db:"cover_letter"`   // Cover letter text
	ProposedRate *float64  `json:"proposed_rate" db:"proposed_rate"` // Proposed rate, nil when not specified
	Status       string    `json:"status" db:"status"`               // pending, accepted, rejected
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// ApplicationWithJob is an application row joined with its job and the
// applicant's username, as shown on the applications pages.
type ApplicationWithJob struct {
	ApplicationDB
	JobTitle           string `json:"job_title" db:"job_title"`                     // Title of the applied-to job
	JobRecruiterID     int64  `json:"job_recruiter_id" db:"job_recruiter_id"`       // Recruiter owning the job
	FreelancerUsername string `json:"freelancer_username" db:"freelancer_username"` // Applicant's username
}
