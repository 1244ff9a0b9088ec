package models

import "time"

// Actions recorded in the email validation log.
const (
	EmailActionRegistration = "registration"
	EmailActionLogin        = "login"
)

// EmailValidationLogDB is an append-only audit record of an email-format
// check performed during registration or login. Rows are never updated or
// deleted by normal flows.
type EmailValidationLogDB struct {
	ID                int64     `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	IsValid           bool      `json:"is_valid" db:"is_valid"`
	ValidationMessage string    `json:"validation_message" db:"validation_message"`
	ActionType        string    `json:"action_type" db:"action_type"` // registration or login
	AttemptedAt       time.Time `json:"attempted_at" db:"attempted_at"`
}
