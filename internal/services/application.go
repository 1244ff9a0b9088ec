package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/repositories"
)

// Error variables
var (
	ErrNotFreelancer       = errors.New("only freelancers can perform this action")
	ErrJobNotOpen          = errors.New("job is not open for applications")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotJobOwner         = errors.New("job belongs to another recruiter")
	ErrAlreadyDecided      = errors.New("application already decided")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// ApplicationReader defines read-only operations for applications.
type ApplicationReader interface {
	GetByID(ctx context.Context, id int64) (*models.ApplicationWithJob, error)
	Exists(ctx context.Context, jobID, freelancerID int64) (bool, error)
	ListByFreelancer(ctx context.Context, freelancerID int64) ([]models.ApplicationWithJob, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.ApplicationWithJob, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	Save(ctx context.Context, app *models.ApplicationDB) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// ApplicationService handles job applications and their decisions.
type ApplicationService struct {
	reader        ApplicationReader
	writer        ApplicationWriter
	jobs          JobReader
	users         UserGetter
	notifications NotificationSaver
	kafkaWriter   KafkaWriter
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(
	reader ApplicationReader,
	writer ApplicationWriter,
	jobs JobReader,
	users UserGetter,
	notifications NotificationSaver,
	kafkaWriter KafkaWriter,
) *ApplicationService {
	return &ApplicationService{
		reader:        reader,
		writer:        writer,
		jobs:          jobs,
		users:         users,
		notifications: notifications,
		kafkaWriter:   kafkaWriter,
	}
}

// Apply submits the freelancer's application to an open job. At most one
// application per freelancer per job; the job's recruiter is notified.
func (svc *ApplicationService) Apply(ctx context.Context, freelancerID int64, userType string, jobID int64, coverLetter string, proposedRate *float64) (*models.ApplicationDB, error) {
	if userType != models.UserTypeFreelancer {
		return nil, ErrNotFreelancer
	}

	job, err := svc.jobs.GetByID(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", jobID, "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.Status != models.JobStatusOpen {
		return nil, ErrJobNotOpen
	}

	exists, err := svc.reader.Exists(ctx, jobID, freelancerID)
	if err != nil {
		logger.Log.Errorw("failed to check application exists", "jobID", jobID, "freelancerID", freelancerID, "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	// Resolved before the first write so a lookup failure cannot leave a
	// committed application without its notification.
	freelancer, err := svc.users.GetByID(ctx, freelancerID)
	if err != nil {
		logger.Log.Errorw("failed to get freelancer", "freelancerID", freelancerID, "err", err)
		return nil, err
	}
	applicantName := "a freelancer"
	if freelancer != nil {
		applicantName = freelancer.Username
	}

	app := &models.ApplicationDB{
		JobID:        jobID,
		FreelancerID: freelancerID,
		CoverLetter:  coverLetter,
		ProposedRate: proposedRate,
		Status:       models.ApplicationStatusPending,
	}
	id, err := svc.writer.Save(ctx, app)
	if err != nil {
		// Two freelancers cannot collide on the unique key, but the same
		// freelancer double-submitting can race past the Exists check.
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, ErrAlreadyApplied
		}
		logger.Log.Errorw("failed to save application", "jobID", jobID, "freelancerID", freelancerID, "err", err)
		return nil, err
	}
	app.ID = id

	notification := fmt.Sprintf("New application from %s for %q", applicantName, job.Title)
	if _, err := svc.notifications.Save(ctx, job.RecruiterID, notification, models.NotificationTypeApplicationReceived); err != nil {
		logger.Log.Errorw("failed to save notification", "recruiterID", job.RecruiterID, "err", err)
		return nil, err
	}

	publishActivity(ctx, svc.kafkaWriter, models.ActivityApplicationSubmitted, freelancerID, id)

	return app, nil
}

// MyApplications returns the freelancer's applications with job details.
func (svc *ApplicationService) MyApplications(ctx context.Context, freelancerID int64, userType string) ([]models.ApplicationWithJob, error) {
	if userType != models.UserTypeFreelancer {
		return nil, ErrNotFreelancer
	}
	apps, err := svc.reader.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		logger.Log.Errorw("failed to list freelancer applications", "freelancerID", freelancerID, "err", err)
		return nil, err
	}
	return apps, nil
}

// ReceivedApplications returns the applications to the recruiter's jobs.
func (svc *ApplicationService) ReceivedApplications(ctx context.Context, recruiterID int64, userType string) ([]models.ApplicationWithJob, error) {
	if userType != models.UserTypeRecruiter {
		return nil, ErrNotRecruiter
	}
	apps, err := svc.reader.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		logger.Log.Errorw("failed to list received applications", "recruiterID", recruiterID, "err", err)
		return nil, err
	}
	return apps, nil
}

// Decide accepts or rejects a pending application to one of the
// recruiter's own jobs and notifies the freelancer.
func (svc *ApplicationService) Decide(ctx context.Context, recruiterID int64, userType string, applicationID int64, status string) (*models.ApplicationWithJob, error) {
	if userType != models.UserTypeRecruiter {
		return nil, ErrNotRecruiter
	}
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return nil, ErrInvalidStatus
	}

	app, err := svc.reader.GetByID(ctx, applicationID)
	if err != nil {
		logger.Log.Errorw("failed to get application", "applicationID", applicationID, "err", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.JobRecruiterID != recruiterID {
		return nil, ErrNotJobOwner
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, ErrAlreadyDecided
	}

	if _, err := svc.writer.UpdateStatus(ctx, applicationID, status); err != nil {
		logger.Log.Errorw("failed to update application status", "applicationID", applicationID, "status", status, "err", err)
		return nil, err
	}
	app.Status = status

	notificationType := models.NotificationTypeApplicationAccepted
	verb := "accepted"
	if status == models.ApplicationStatusRejected {
		notificationType = models.NotificationTypeApplicationRejected
		verb = "rejected"
	}
	notification := fmt.Sprintf("Your application for %q was %s", app.JobTitle, verb)
	if _, err := svc.notifications.Save(ctx, app.FreelancerID, notification, notificationType); err != nil {
		logger.Log.Errorw("failed to save notification", "freelancerID", app.FreelancerID, "err", err)
		return nil, err
	}

	return app, nil
}
