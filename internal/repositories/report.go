package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// ReportReadRepository computes the admin dashboard aggregates. It joins the
// request transaction so every aggregate of one dashboard reads the same
// snapshot.
type ReportReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReportReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReportReadRepository {
	return &ReportReadRepository{db: db, txGetter: txGetter}
}

func (r *ReportReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// UserStats counts non-admin users per user type.
func (r *ReportReadRepository) UserStats(ctx context.Context) ([]models.UserTypeStat, error) {
	const query = `
		SELECT user_type, COUNT(*) AS count
		FROM users
		WHERE user_type <> 'admin'
		GROUP BY user_type
		ORDER BY user_type
	`

	var stats []models.UserTypeStat
	err := sqlx.SelectContext(ctx, r.executor(ctx), &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(stats),
		"error", err,
	)

	return stats, err
}

// JobStats aggregates jobs per status. The average budget ignores jobs
// without one; a status group made solely of budgetless jobs reports zero.
func (r *ReportReadRepository) JobStats(ctx context.Context) ([]models.JobStat, error) {
	const query = `
		SELECT status, COUNT(*) AS count, COALESCE(AVG(budget), 0) AS avg_budget
		FROM jobs
		GROUP BY status
		ORDER BY status
	`

	var stats []models.JobStat
	err := sqlx.SelectContext(ctx, r.executor(ctx), &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(stats),
		"error", err,
	)

	return stats, err
}

// ApplicationStats aggregates applications per status.
func (r *ReportReadRepository) ApplicationStats(ctx context.Context) ([]models.ApplicationStat, error) {
	const query = `
		SELECT status, COUNT(*) AS count, COALESCE(AVG(proposed_rate), 0) AS avg_proposed_rate
		FROM applications
		GROUP BY status
		ORDER BY status
	`

	var stats []models.ApplicationStat
	err := sqlx.SelectContext(ctx, r.executor(ctx), &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(stats),
		"error", err,
	)

	return stats, err
}

// RecentActivity merges job postings and application submissions into one
// feed, newest first, capped at limit.
func (r *ReportReadRepository) RecentActivity(ctx context.Context, limit int) ([]models.ActivityItem, error) {
	const query = `
		SELECT event_type, username, title, occurred_at FROM (
			SELECT 'job_posted' AS event_type, u.username, j.title, j.created_at AS occurred_at
			FROM jobs j
			JOIN users u ON u.id = j.recruiter_id
			UNION ALL
			SELECT 'application_submitted' AS event_type, u.username, j.title, a.created_at AS occurred_at
			FROM applications a
			JOIN users u ON u.id = a.freelancer_id
			JOIN jobs j ON j.id = a.job_id
		) activity
		ORDER BY occurred_at DESC
		LIMIT $1
	`

	var items []models.ActivityItem
	err := sqlx.SelectContext(ctx, r.executor(ctx), &items, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(items),
		"error", err,
	)

	return items, err
}

// PopularJobs ranks jobs by application count, keeping jobs with none.
func (r *ReportReadRepository) PopularJobs(ctx context.Context, limit int) ([]models.PopularJob, error) {
	const query = `
		SELECT j.id AS job_id, j.title, u.username AS recruiter_username,
		       COUNT(a.id) AS application_count
		FROM jobs j
		JOIN users u ON u.id = j.recruiter_id
		LEFT JOIN applications a ON a.job_id = j.id
		GROUP BY j.id, j.title, u.username
		ORDER BY application_count DESC, j.id
		LIMIT $1
	`

	var jobs []models.PopularJob
	err := sqlx.SelectContext(ctx, r.executor(ctx), &jobs, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(jobs),
		"error", err,
	)

	return jobs, err
}

// Totals counts every entity shown on the dashboard header.
func (r *ReportReadRepository) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users WHERE user_type <> 'admin') AS users,
			(SELECT COUNT(*) FROM jobs) AS jobs,
			(SELECT COUNT(*) FROM applications) AS applications,
			(SELECT COUNT(*) FROM messages) AS messages
	`

	var totals models.DashboardTotals
	err := sqlx.GetContext(ctx, r.executor(ctx), &totals, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", totals,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &totals, nil
}
