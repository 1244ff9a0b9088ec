package models

import "time"

// MessageDB represents a chat message in the database. Messages are ordered
// within a conversation by (created_at, id); ids are assigned by the store
// and are monotonically increasing, which is what the polling contract
// relies on.
type MessageDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key, ordering tie-break
	ConversationID int64     `json:"conversation_id" db:"conversation_id"` // Owning conversation
	SenderID       int64     `json:"sender_id" db:"sender_id"`             // Sending participant
	ReceiverID     int64     `json:"receiver_id" db:"receiver_id"`         // The conversation's other participant
	Content        string    `json:"content" db:"content"`                 // Non-empty message text
	IsRead         bool      `json:"is_read" db:"is_read"`                 // Read flag, set when the receiver views
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Append timestamp
}

// MessageWithSender is a message row joined with the sender's username,
// the shape returned by the polling endpoint.
type MessageWithSender struct {
	MessageDB
	SenderUsername string `json:"sender_username" db:"sender_username"`
}
