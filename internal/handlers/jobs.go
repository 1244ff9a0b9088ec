package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/services"
)

// JobTokener defines only the methods needed by the job handlers.
type JobTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// JobPoster defines the interface that the job posting service must implement.
type JobPoster interface {
	PostJob(ctx context.Context, recruiterID int64, userType string, input services.JobInput) (*models.JobDB, error)
}

// JobLister defines the interface for listing jobs.
type JobLister interface {
	ListOpenJobs(ctx context.Context) ([]models.JobDB, error)
	ListMyJobs(ctx context.Context, recruiterID int64, userType string) ([]models.JobDB, error)
}

// JobGetter defines the interface for fetching one job.
type JobGetter interface {
	GetJob(ctx context.Context, id int64) (*models.JobDB, error)
}

// PostJobRequest represents the JSON body for posting a job
// swagger:model PostJobRequest
type PostJobRequest struct {
	// Job title
	// required: true
	// default: Build a landing page
	Title string `json:"title"`

	// Job description
	// required: true
	// default: Four sections, responsive layout
	Description string `json:"description"`

	// Comma-separated required skills
	// default: html,css
	SkillsRequired string `json:"skills_required"`

	// Budget, omit when not fixed
	// default: 500.0
	Budget *float64 `json:"budget"`

	// Expected duration
	// default: 2 weeks
	Duration string `json:"duration"`

	// Location or remote
	// default: remote
	Location string `json:"location"`
}

// JobErrorResponse represents an error response for job endpoints
// swagger:model JobErrorResponse
type JobErrorResponse struct {
	// Error message
	// default: Job not found
	Error string `json:"error"`
}

// NewPostJobHandler returns an HTTP handler for posting a job.
// @Summary Post a new job
// @Description Creates an open job posting owned by the authenticated recruiter
// @Tags jobs
// @Accept json
// @Produce json
// @Param postJobRequest body handlers.PostJobRequest true "Job posting request"
// @Success 201 {object} models.JobDB "Job created"
// @Failure 400 {object} handlers.JobErrorResponse "Invalid request"
// @Failure 401 {object} handlers.JobErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.JobErrorResponse "Not a recruiter"
// @Router /jobs [post]
// @Security BearerAuth
func NewPostJobHandler(svc JobPoster, tokenGetter JobTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req PostJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JobErrorResponse{Error: "invalid request body"})
			return
		}

		job, err := svc.PostJob(ctx, claims.UserID, claims.UserType, services.JobInput{
			Title:          req.Title,
			Description:    req.Description,
			SkillsRequired: req.SkillsRequired,
			Budget:         req.Budget,
			Duration:       req.Duration,
			Location:       req.Location,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrNegativeBudget):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNotRecruiter):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(job)
	}
}

// NewListJobsHandler returns an HTTP handler listing open jobs.
// @Summary List open jobs
// @Description Returns every job still open for applications, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} models.JobDB "Open jobs"
// @Failure 401 {object} handlers.JobErrorResponse "Unauthorized"
// @Router /jobs [get]
// @Security BearerAuth
func NewListJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := svc.ListOpenJobs(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(JobErrorResponse{Error: "Internal server error"})
			return
		}
		if jobs == nil {
			jobs = []models.JobDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(jobs)
	}
}

// NewGetJobHandler returns an HTTP handler fetching one job by id.
// @Summary Get a job
// @Description Returns one job posting by id
// @Tags jobs
// @Produce json
// @Param jobID path int true "Job ID"
// @Success 200 {object} models.JobDB "Job"
// @Failure 404 {object} handlers.JobErrorResponse "Job not found"
// @Router /jobs/{jobID} [get]
// @Security BearerAuth
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JobErrorResponse{Error: "invalid job id"})
			return
		}

		job, err := svc.GetJob(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: "Job not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(job)
	}
}

// NewMyJobsHandler returns an HTTP handler listing the recruiter's own jobs.
// @Summary List my jobs
// @Description Returns the authenticated recruiter's own postings, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} models.JobDB "Jobs"
// @Failure 401 {object} handlers.JobErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.JobErrorResponse "Not a recruiter"
// @Router /jobs/mine [get]
// @Security BearerAuth
func NewMyJobsHandler(svc JobLister, tokenGetter JobTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		jobs, err := svc.ListMyJobs(ctx, claims.UserID, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotRecruiter):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JobErrorResponse{Error: "Internal server error"})
			}
			return
		}
		if jobs == nil {
			jobs = []models.JobDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(jobs)
	}
}
