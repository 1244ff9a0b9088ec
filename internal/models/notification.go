package models

import "time"

// Notification types emitted by mutating actions.
const (
	NotificationTypeNewMessage          = "new_message"
	NotificationTypeApplicationReceived = "application_received"
	NotificationTypeApplicationAccepted = "application_accepted"
	NotificationTypeApplicationRejected = "application_rejected"
)

// NotificationDB represents a notification record in the database
type NotificationDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Recipient
	Message   string    `json:"message" db:"message"`       // Human-readable text
	Type      string    `json:"type" db:"notification_type"` // Notification type tag
	IsRead    bool      `json:"is_read" db:"is_read"`       // Read flag
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
