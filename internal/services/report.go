package services

import (
	"context"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

const (
	recentActivityLimit   = 50
	popularJobsLimit      = 10
	recentValidationLimit = 20
)

// ReportReader computes the admin dashboard aggregates.
type ReportReader interface {
	UserStats(ctx context.Context) ([]models.UserTypeStat, error)
	JobStats(ctx context.Context) ([]models.JobStat, error)
	ApplicationStats(ctx context.Context) ([]models.ApplicationStat, error)
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityItem, error)
	PopularJobs(ctx context.Context, limit int) ([]models.PopularJob, error)
	Totals(ctx context.Context) (*models.DashboardTotals, error)
}

// EmailValidationReader lists recent email validation attempts.
type EmailValidationReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.EmailValidationLogDB, error)
}

// ReportService builds the admin dashboard.
type ReportService struct {
	reports     ReportReader
	validations EmailValidationReader
}

// NewReportService creates a new ReportService instance.
func NewReportService(reports ReportReader, validations EmailValidationReader) *ReportService {
	return &ReportService{reports: reports, validations: validations}
}

// AdminDashboard assembles every dashboard aggregate. Only admins may call
// it.
func (svc *ReportService) AdminDashboard(ctx context.Context, userType string) (*models.AdminDashboard, error) {
	if userType != models.UserTypeAdmin {
		return nil, ErrNotAdmin
	}

	userStats, err := svc.reports.UserStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute user stats", "err", err)
		return nil, err
	}
	jobStats, err := svc.reports.JobStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute job stats", "err", err)
		return nil, err
	}
	applicationStats, err := svc.reports.ApplicationStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute application stats", "err", err)
		return nil, err
	}
	activity, err := svc.reports.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		logger.Log.Errorw("failed to compute recent activity", "err", err)
		return nil, err
	}
	popular, err := svc.reports.PopularJobs(ctx, popularJobsLimit)
	if err != nil {
		logger.Log.Errorw("failed to compute popular jobs", "err", err)
		return nil, err
	}
	totals, err := svc.reports.Totals(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute dashboard totals", "err", err)
		return nil, err
	}
	validations, err := svc.validations.ListRecent(ctx, recentValidationLimit)
	if err != nil {
		logger.Log.Errorw("failed to list recent email validations", "err", err)
		return nil, err
	}

	return &models.AdminDashboard{
		UserStats:         userStats,
		JobStats:          jobStats,
		ApplicationStats:  applicationStats,
		RecentActivity:    activity,
		PopularJobs:       popular,
		Totals:            *totals,
		RecentValidations: validations,
	}, nil
}
