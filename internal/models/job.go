package models

import "time"

// Job statuses.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// JobDB represents a job posting in the database
type JobDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key
	Title          string    `json:"title" db:"title"`                     // Job title
	Description    string    `json:"description" db:"description"`         // Full description
	SkillsRequired string    `json:"skills_required" db:"skills_required"` // Comma-separated skills
	Budget         *float64  `json:"budget" db:"budget"`                   // Budget, nil when not specified
	Duration       string    `json:"duration" db:"duration"`               // Expected duration
	Location       string    `json:"location" db:"location"`               // Location or "remote"
	Status         string    `json:"status" db:"status"`                   // open, in_progress, completed, cancelled
	RecruiterID    int64     `json:"recruiter_id" db:"recruiter_id"`       // Owning recruiter
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
