package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

type ConversationReadRepository struct {
	db *sqlx.DB
}

func NewConversationReadRepository(db *sqlx.DB) *ConversationReadRepository {
	return &ConversationReadRepository{db: db}
}

// GetByID returns the conversation with the given id, or nil when it does
// not exist.
func (r *ConversationReadRepository) GetByID(ctx context.Context, id int64) (*models.ConversationDB, error) {
	const query = `
		SELECT id, user1_id, user2_id, created_at, updated_at
		FROM conversations
		WHERE id = $1
	`

	var conv models.ConversationDB
	err := r.db.GetContext(ctx, &conv, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", conv,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// ListForUser returns the user's conversations ordered by last activity,
// each with the other participant's username, the latest message text and
// the viewer's unread count.
func (r *ConversationReadRepository) ListForUser(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	const query = `
		SELECT c.id,
		       CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END AS other_user_id,
		       u.username AS other_username,
		       (SELECT m.content FROM messages m
		        WHERE m.conversation_id = c.id
		        ORDER BY m.created_at DESC, m.id DESC
		        LIMIT 1) AS last_message,
		       (SELECT COUNT(*) FROM messages m
		        WHERE m.conversation_id = c.id AND m.receiver_id = $1 AND NOT m.is_read) AS unread_count,
		       c.updated_at
		FROM conversations c
		JOIN users u ON u.id = CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END
		WHERE c.user1_id = $1 OR c.user2_id = $1
		ORDER BY c.updated_at DESC
	`

	var summaries []models.ConversationSummary
	err := r.db.SelectContext(ctx, &summaries, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(summaries),
		"error", err,
	)

	return summaries, err
}

type ConversationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewConversationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ConversationWriteRepository {
	return &ConversationWriteRepository{db: db, txGetter: txGetter}
}

func (r *ConversationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetOrCreate returns the conversation for the unordered user pair,
// creating it when absent. The pair is canonicalized to (min, max) before
// insert, and the unique index on (user1_id, user2_id) makes concurrent
// calls for the same pair converge on one row regardless of argument order.
func (r *ConversationWriteRepository) GetOrCreate(ctx context.Context, userA, userB int64) (*models.ConversationDB, error) {
	user1, user2 := userA, userB
	if user1 > user2 {
		user1, user2 = user2, user1
	}

	const insertQuery = `
		INSERT INTO conversations (user1_id, user2_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user1_id, user2_id) DO NOTHING
	`

	executor := r.executor(ctx)

	res, err := executor.ExecContext(ctx, insertQuery, user1, user2)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{user1, user2},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	const selectQuery = `
		SELECT id, user1_id, user2_id, created_at, updated_at
		FROM conversations
		WHERE user1_id = $1 AND user2_id = $2
	`

	var conv models.ConversationDB
	err = sqlx.GetContext(ctx, executor, &conv, selectQuery, user1, user2)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(selectQuery), " "),
		"args", []any{user1, user2},
		"result", conv,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// Touch bumps the conversation's updated_at to the given time. Used on
// every message append.
func (r *ConversationWriteRepository) Touch(ctx context.Context, id int64, at time.Time) error {
	const query = `
		UPDATE conversations
		SET updated_at = GREATEST(updated_at, $2)
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, at)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, at},
		"result", "ok",
		"error", err,
	)

	return err
}
