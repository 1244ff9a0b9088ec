package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

type EmailValidationReadRepository struct {
	db *sqlx.DB
}

func NewEmailValidationReadRepository(db *sqlx.DB) *EmailValidationReadRepository {
	return &EmailValidationReadRepository{db: db}
}

// ListRecent returns the most recent validation attempts, newest first.
func (r *EmailValidationReadRepository) ListRecent(ctx context.Context, limit int) ([]models.EmailValidationLogDB, error) {
	const query = `
		SELECT id, email, is_valid, validation_message, action_type, attempted_at
		FROM email_validation_logs
		ORDER BY attempted_at DESC, id DESC
		LIMIT $1
	`

	var logs []models.EmailValidationLogDB
	err := sqlx.SelectContext(ctx, r.db, &logs, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(logs),
		"error", err,
	)

	return logs, err
}

type EmailValidationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEmailValidationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EmailValidationWriteRepository {
	return &EmailValidationWriteRepository{db: db, txGetter: txGetter}
}

func (r *EmailValidationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *EmailValidationWriteRepository) Save(ctx context.Context, email, action string, isValid bool, message string) (int64, error) {
	const query = `
		INSERT INTO email_validation_logs (email, is_valid, validation_message, action_type, attempted_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{email, isValid, message, action}

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
