package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// MessageReadRepository is transaction-aware, unlike the other read
// repositories: a poll lists new messages and marks them read as one unit,
// so both statements have to see the same snapshot.
type MessageReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageReadRepository {
	return &MessageReadRepository{db: db, txGetter: txGetter}
}

func (r *MessageReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListAfter returns the conversation's messages with id greater than
// afterID, ascending by (created_at, id), each with the sender's username.
// afterID zero returns the full history.
func (r *MessageReadRepository) ListAfter(ctx context.Context, conversationID, afterID int64) ([]models.MessageWithSender, error) {
	const query = `
		SELECT m.id, m.conversation_id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
		       u.username AS sender_username
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.conversation_id = $1 AND m.id > $2
		ORDER BY m.created_at ASC, m.id ASC
	`

	var messages []models.MessageWithSender
	err := sqlx.SelectContext(ctx, r.executor(ctx), &messages, query, conversationID, afterID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversationID, afterID},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

// UnreadCountForUser returns the user's unread message count across all
// conversations. Backs the global unread badge.
func (r *MessageReadRepository) UnreadCountForUser(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM messages
		WHERE receiver_id = $1 AND NOT is_read
	`

	var count int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

func (r *MessageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends a message and fills in its store-assigned id and timestamp.
func (r *MessageWriteRepository) Save(ctx context.Context, message *models.MessageDB) error {
	const query = `
		INSERT INTO messages (conversation_id, sender_id, receiver_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING id, created_at
	`
	args := []any{message.ConversationID, message.SenderID, message.ReceiverID, message.Content}

	row := r.executor(ctx).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&message.ID, &message.CreatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", message.ID,
		"error", err,
	)

	return err
}

// MarkRead marks all of the viewer's unread messages in the conversation
// as read. Idempotent; returns the number of rows updated.
func (r *MessageWriteRepository) MarkRead(ctx context.Context, conversationID, receiverID int64) (int64, error) {
	const query = `
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND receiver_id = $2 AND NOT is_read
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, conversationID, receiverID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{conversationID, receiverID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
