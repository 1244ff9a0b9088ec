package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the user matching the given username and/or
// email, or nil when no such user exists.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, user_type, created_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, user_type, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListNonAdmins returns all freelancer and recruiter accounts, newest first.
// Used by the admin users page.
func (r *UserReadRepository) ListNonAdmins(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, user_type, created_at
		FROM users
		WHERE user_type <> $1
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, models.UserTypeAdmin)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.UserTypeAdmin},
		"result", len(users),
		"error", err,
	)

	return users, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns its id. Duplicate usernames and
// emails surface as a unique-constraint violation.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, userType string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, user_type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{username, email, passwordHash, userType}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, userType},
		"result", id,
		"error", err,
	)

	return id, err
}

// Delete removes a user. Dependent rows (jobs, applications, notifications,
// conversations, messages) are removed by the cascade constraints.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
