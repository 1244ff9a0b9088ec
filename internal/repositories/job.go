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

type JobReadRepository struct {
	db *sqlx.DB
}

func NewJobReadRepository(db *sqlx.DB) *JobReadRepository {
	return &JobReadRepository{db: db}
}

// GetByID returns the job with the given id, or nil when it does not exist.
func (r *JobReadRepository) GetByID(ctx context.Context, id int64) (*models.JobDB, error) {
	const query = `
		SELECT id, title, description, skills_required, budget, duration, location, status, recruiter_id, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var job models.JobDB
	err := r.db.GetContext(ctx, &job, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", job,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &job, nil
}

// ListByStatus returns all jobs with the given status, newest first.
func (r *JobReadRepository) ListByStatus(ctx context.Context, status string) ([]models.JobDB, error) {
	const query = `
		SELECT id, title, description, skills_required, budget, duration, location, status, recruiter_id, created_at, updated_at
		FROM jobs
		WHERE status = $1
		ORDER BY created_at DESC
	`

	var jobs []models.JobDB
	err := r.db.SelectContext(ctx, &jobs, query, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"result", len(jobs),
		"error", err,
	)

	return jobs, err
}

// ListAll returns every job regardless of status, newest first.
func (r *JobReadRepository) ListAll(ctx context.Context) ([]models.JobDB, error) {
	const query = `
		SELECT id, title, description, skills_required, budget, duration, location, status, recruiter_id, created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC
	`

	var jobs []models.JobDB
	err := r.db.SelectContext(ctx, &jobs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(jobs),
		"error", err,
	)

	return jobs, err
}

// ListByRecruiter returns all jobs posted by the given recruiter, newest first.
func (r *JobReadRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.JobDB, error) {
	const query = `
		SELECT id, title, description, skills_required, budget, duration, location, status, recruiter_id, created_at, updated_at
		FROM jobs
		WHERE recruiter_id = $1
		ORDER BY created_at DESC
	`

	var jobs []models.JobDB
	err := r.db.SelectContext(ctx, &jobs, query, recruiterID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recruiterID},
		"result", len(jobs),
		"error", err,
	)

	return jobs, err
}

type JobWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJobWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobWriteRepository {
	return &JobWriteRepository{db: db, txGetter: txGetter}
}

func (r *JobWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new job with status open and returns its id.
func (r *JobWriteRepository) Save(ctx context.Context, job *models.JobDB) (int64, error) {
	const query = `
		INSERT INTO jobs (title, description, skills_required, budget, duration, location, status, recruiter_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	args := []any{job.Title, job.Description, job.SkillsRequired, job.Budget, job.Duration, job.Location, models.JobStatusOpen, job.RecruiterID}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Delete removes a job; its applications go with it via the cascade
// constraint. Returns the number of rows deleted.
func (r *JobWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM jobs WHERE id = $1`

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
