package models

import "time"

// ConversationDB represents a two-party conversation in the database.
// Rows are stored with the canonical pair ordering user1_id < user2_id so
// the unique index on the pair deduplicates conversations regardless of
// which participant started one.
type ConversationDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	User1ID   int64     `json:"user1_id" db:"user1_id"`     // Smaller participant id
	User2ID   int64     `json:"user2_id" db:"user2_id"`     // Larger participant id
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Bumped on every new message
}

// OtherParticipant returns the participant that is not the viewer.
// ok is false when the viewer is not a participant at all.
func (c *ConversationDB) OtherParticipant(viewerID int64) (otherID int64, ok bool) {
	switch viewerID {
	case c.User1ID:
		return c.User2ID, true
	case c.User2ID:
		return c.User1ID, true
	default:
		return 0, false
	}
}

// ConversationSummary is a conversation row enriched for the conversation
// list: the other participant's identity, the latest message preview and the
// viewer's unread count.
type ConversationSummary struct {
	ID            int64     `json:"id" db:"id"`
	OtherUserID   int64     `json:"other_user_id" db:"other_user_id"`
	OtherUsername string    `json:"other_username" db:"other_username"`
	LastMessage   *string   `json:"last_message" db:"last_message"` // nil when the conversation is empty
	UnreadCount   int64     `json:"unread_count" db:"unread_count"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
