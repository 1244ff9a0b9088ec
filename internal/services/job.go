package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// Error variables
var (
	ErrNotRecruiter   = errors.New("only recruiters can perform this action")
	ErrJobNotFound    = errors.New("job not found")
	ErrNegativeBudget = errors.New("budget must be non-negative")
)

// JobReader defines read-only operations for jobs.
type JobReader interface {
	GetByID(ctx context.Context, id int64) (*models.JobDB, error)
	ListByStatus(ctx context.Context, status string) ([]models.JobDB, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]models.JobDB, error)
}

// JobWriter defines write operations for jobs.
type JobWriter interface {
	Save(ctx context.Context, job *models.JobDB) (int64, error)
}

// JobInput carries the recruiter-supplied fields of a new job posting.
type JobInput struct {
	Title          string
	Description    string
	SkillsRequired string
	Budget         *float64
	Duration       string
	Location       string
}

// JobService handles job postings.
type JobService struct {
	reader      JobReader
	writer      JobWriter
	kafkaWriter KafkaWriter
}

// NewJobService creates a new JobService instance.
func NewJobService(reader JobReader, writer JobWriter, kafkaWriter KafkaWriter) *JobService {
	return &JobService{reader: reader, writer: writer, kafkaWriter: kafkaWriter}
}

// PostJob creates an open job posting owned by the recruiter.
func (svc *JobService) PostJob(ctx context.Context, recruiterID int64, userType string, input JobInput) (*models.JobDB, error) {
	if userType != models.UserTypeRecruiter {
		return nil, ErrNotRecruiter
	}
	if input.Title == "" || input.Description == "" {
		return nil, ErrMissingFields
	}
	if input.Budget != nil && *input.Budget < 0 {
		return nil, ErrNegativeBudget
	}

	job := &models.JobDB{
		Title:          input.Title,
		Description:    input.Description,
		SkillsRequired: input.SkillsRequired,
		Budget:         input.Budget,
		Duration:       input.Duration,
		Location:       input.Location,
		RecruiterID:    recruiterID,
		Status:         models.JobStatusOpen,
	}
	id, err := svc.writer.Save(ctx, job)
	if err != nil {
		logger.Log.Errorw("failed to save job", "recruiterID", recruiterID, "err", err)
		return nil, err
	}
	job.ID = id

	publishActivity(ctx, svc.kafkaWriter, models.ActivityJobPosted, recruiterID, id)

	return job, nil
}

// ListOpenJobs returns every job still open for applications, newest first.
func (svc *JobService) ListOpenJobs(ctx context.Context) ([]models.JobDB, error) {
	jobs, err := svc.reader.ListByStatus(ctx, models.JobStatusOpen)
	if err != nil {
		logger.Log.Errorw("failed to list open jobs", "err", err)
		return nil, err
	}
	return jobs, nil
}

// GetJob returns one job posting by id.
func (svc *JobService) GetJob(ctx context.Context, id int64) (*models.JobDB, error) {
	job, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", id, "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListMyJobs returns the recruiter's own postings, newest first.
func (svc *JobService) ListMyJobs(ctx context.Context, recruiterID int64, userType string) ([]models.JobDB, error) {
	if userType != models.UserTypeRecruiter {
		return nil, ErrNotRecruiter
	}
	jobs, err := svc.reader.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		logger.Log.Errorw("failed to list recruiter jobs", "recruiterID", recruiterID, "err", err)
		return nil, err
	}
	return jobs, nil
}
