package models

import "time"

// User types supported by the platform.
const (
	UserTypeFreelancer = "freelancer"
	UserTypeRecruiter  = "recruiter"
	UserTypeAdmin      = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	UserType     string    `json:"user_type" db:"user_type"`   // freelancer, recruiter or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
