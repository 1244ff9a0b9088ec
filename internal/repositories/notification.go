package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// NotificationReadRepository shares the request transaction with the
// write side so a drain lists and marks read atomically.
type NotificationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationReadRepository {
	return &NotificationReadRepository{db: db, txGetter: txGetter}
}

func (r *NotificationReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListByUser returns the user's notifications, newest first.
func (r *NotificationReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, user_id, message, notification_type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var notifications []models.NotificationDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *NotificationWriteRepository) Save(ctx context.Context, userID int64, message, notificationType string) (int64, error) {
	const query = `
		INSERT INTO notifications (user_id, message, notification_type, is_read, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING id
	`
	args := []any{userID, message, notificationType}

	var id int64
	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// MarkAllRead marks every unread notification of the user as read and
// returns the number of rows updated.
func (r *NotificationWriteRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND NOT is_read
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
