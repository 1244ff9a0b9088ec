package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// Error variables
var (
	ErrNotAdmin          = errors.New("only admins can perform this action")
	ErrCannotDeleteAdmin = errors.New("admin accounts cannot be deleted")
)

// UserLister lists the non-admin user accounts.
type UserLister interface {
	ListNonAdmins(ctx context.Context) ([]models.UserDB, error)
}

// UserDeleter deletes a user account.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

// JobDeleter deletes a job posting.
type JobDeleter interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

// JobLister lists every job posting.
type JobLister interface {
	ListAll(ctx context.Context) ([]models.JobDB, error)
}

// ApplicationLister lists every application with its job details.
type ApplicationLister interface {
	ListAll(ctx context.Context) ([]models.ApplicationWithJob, error)
}

// AdminService handles the admin moderation operations.
type AdminService struct {
	users        UserLister
	userGetter   UserGetter
	userDeleter  UserDeleter
	jobDeleter   JobDeleter
	jobs         JobLister
	applications ApplicationLister
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(users UserLister, userGetter UserGetter, userDeleter UserDeleter, jobDeleter JobDeleter, jobs JobLister, applications ApplicationLister) *AdminService {
	return &AdminService{
		users:        users,
		userGetter:   userGetter,
		userDeleter:  userDeleter,
		jobDeleter:   jobDeleter,
		jobs:         jobs,
		applications: applications,
	}
}

// ListUsers returns every non-admin account, newest first.
func (svc *AdminService) ListUsers(ctx context.Context, userType string) ([]models.UserDB, error) {
	if userType != models.UserTypeAdmin {
		return nil, ErrNotAdmin
	}
	users, err := svc.users.ListNonAdmins(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// ListJobs returns every job posting regardless of status, newest first.
func (svc *AdminService) ListJobs(ctx context.Context, userType string) ([]models.JobDB, error) {
	if userType != models.UserTypeAdmin {
		return nil, ErrNotAdmin
	}
	jobs, err := svc.jobs.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "err", err)
		return nil, err
	}
	return jobs, nil
}

// ListApplications returns every application across all jobs, newest first.
func (svc *AdminService) ListApplications(ctx context.Context, userType string) ([]models.ApplicationWithJob, error) {
	if userType != models.UserTypeAdmin {
		return nil, ErrNotAdmin
	}
	apps, err := svc.applications.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "err", err)
		return nil, err
	}
	return apps, nil
}

// DeleteUser removes a non-admin account together with its jobs,
// applications, conversations, messages and notifications.
func (svc *AdminService) DeleteUser(ctx context.Context, userType string, id int64) error {
	if userType != models.UserTypeAdmin {
		return ErrNotAdmin
	}

	user, err := svc.userGetter.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.UserType == models.UserTypeAdmin {
		return ErrCannotDeleteAdmin
	}

	if _, err := svc.userDeleter.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "userID", id, "err", err)
		return err
	}
	return nil
}

// DeleteJob removes a job posting together with its applications.
func (svc *AdminService) DeleteJob(ctx context.Context, userType string, id int64) error {
	if userType != models.UserTypeAdmin {
		return ErrNotAdmin
	}

	rows, err := svc.jobDeleter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete job", "jobID", id, "err", err)
		return err
	}
	if rows == 0 {
		return ErrJobNotFound
	}
	return nil
}
