package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// ErrDuplicateApplication is returned when the (job, freelancer) pair
// already has an application; the unique index backs this up under races.
var ErrDuplicateApplication = errors.New("application already exists for this job and freelancer")

const uniqueViolationCode = "23505"

type ApplicationReadRepository struct {
	db *sqlx.DB
}

func NewApplicationReadRepository(db *sqlx.DB) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db}
}

// GetByID returns the application joined with its job, or nil when it does
// not exist.
func (r *ApplicationReadRepository) GetByID(ctx context.Context, id int64) (*models.ApplicationWithJob, error) {
	const query = `
		SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at, a.updated_at,
		       j.title AS job_title, j.recruiter_id AS job_recruiter_id, u.username AS freelancer_username
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.freelancer_id
		WHERE a.id = $1
	`

	var app models.ApplicationWithJob
	err := r.db.GetContext(ctx, &app, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", app,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &app, nil
}

// Exists reports whether the freelancer already applied for the job.
func (r *ApplicationReadRepository) Exists(ctx context.Context, jobID, freelancerID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM applications WHERE job_id = $1 AND freelancer_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, jobID, freelancerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID, freelancerID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByFreelancer returns the freelancer's applications, newest first.
func (r *ApplicationReadRepository) ListByFreelancer(ctx context.Context, freelancerID int64) ([]models.ApplicationWithJob, error) {
	const query = `
		SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at, a.updated_at,
		       j.title AS job_title, j.recruiter_id AS job_recruiter_id, u.username AS freelancer_username
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.freelancer_id
		WHERE a.freelancer_id = $1
		ORDER BY a.created_at DESC
	`

	var apps []models.ApplicationWithJob
	err := r.db.SelectContext(ctx, &apps, query, freelancerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{freelancerID},
		"result", len(apps),
		"error", err,
	)

	return apps, err
}

// ListAll returns every application with its job details, newest first.
func (r *ApplicationReadRepository) ListAll(ctx context.Context) ([]models.ApplicationWithJob, error) {
	const query = `
		SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at, a.updated_at,
		       j.title AS job_title, j.recruiter_id AS job_recruiter_id, u.username AS freelancer_username
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.freelancer_id
		ORDER BY a.created_at DESC
	`

	var apps []models.ApplicationWithJob
	err := r.db.SelectContext(ctx, &apps, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(apps),
		"error", err,
	)

	return apps, err
}

// ListByRecruiter returns applications for all jobs the recruiter posted,
// newest first.
func (r *ApplicationReadRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.ApplicationWithJob, error) {
	const query = `
		SELECT a.id, a.job_id, a.freelancer_id, a.cover_letter, a.proposed_rate, a.status, a.created_at, a.updated_at,
		       j.title AS job_title, j.recruiter_id AS job_recruiter_id, u.username AS freelancer_username
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.freelancer_id
		WHERE j.recruiter_id = $1
		ORDER BY a.created_at DESC
	`

	var apps []models.ApplicationWithJob
	err := r.db.SelectContext(ctx, &apps, query, recruiterID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recruiterID},
		"result", len(apps),
		"error", err,
	)

	return apps, err
}

type ApplicationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewApplicationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db, txGetter: txGetter}
}

func (r *ApplicationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new pending application and returns its id. A duplicate
// (job, freelancer) pair yields ErrDuplicateApplication.
func (r *ApplicationWriteRepository) Save(ctx context.Context, app *models.ApplicationDB) (int64, error) {
	const query = `
		INSERT INTO applications (job_id, freelancer_id, cover_letter, proposed_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	args := []any{app.JobID, app.FreelancerID, app.CoverLetter, app.ProposedRate, models.ApplicationStatusPending}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return 0, ErrDuplicateApplication
	}

	return id, err
}

// UpdateStatus sets the application's status. Returns the number of rows
// updated so callers can tell whether the id existed.
func (r *ApplicationWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	const query = `
		UPDATE applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, status},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
