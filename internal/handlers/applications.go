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

// ApplicationTokener defines only the methods needed by the application handlers.
type ApplicationTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Applier defines the interface that the application service must implement.
type Applier interface {
	Apply(ctx context.Context, freelancerID int64, userType string, jobID int64, coverLetter string, proposedRate *float64) (*models.ApplicationDB, error)
}

// ApplicationLister defines the interface for listing applications.
type ApplicationLister interface {
	MyApplications(ctx context.Context, freelancerID int64, userType string) ([]models.ApplicationWithJob, error)
	ReceivedApplications(ctx context.Context, recruiterID int64, userType string) ([]models.ApplicationWithJob, error)
}

// ApplicationDecider defines the interface for deciding applications.
type ApplicationDecider interface {
	Decide(ctx context.Context, recruiterID int64, userType string, applicationID int64, status string) (*models.ApplicationWithJob, error)
}

// ApplyRequest represents the JSON body for applying to a job
// swagger:model ApplyRequest
type ApplyRequest struct {
	// Cover letter text
	// default: I have done similar work before.
	CoverLetter string `json:"cover_letter"`

	// Proposed rate, omit when not specified
	// default: 45.0
	ProposedRate *float64 `json:"proposed_rate"`
}

// DecideApplicationRequest represents the JSON body for deciding an application
// swagger:model DecideApplicationRequest
type DecideApplicationRequest struct {
	// New status, accepted or rejected
	// required: true
	// default: accepted
	Status string `json:"status"`
}

// ApplicationErrorResponse represents an error response for application endpoints
// swagger:model ApplicationErrorResponse
type ApplicationErrorResponse struct {
	// Error message
	// default: Application not found
	Error string `json:"error"`
}

// NewApplyHandler returns an HTTP handler for applying to a job.
// @Summary Apply to a job
// @Description Submits the authenticated freelancer's application to an open job. One application per freelancer per job.
// @Tags applications
// @Accept json
// @Produce json
// @Param jobID path int true "Job ID"
// @Param applyRequest body handlers.ApplyRequest true "Application request"
// @Success 201 {object} models.ApplicationDB "Application submitted"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ApplicationErrorResponse "Not a freelancer"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Job not found"
// @Failure 409 {object} handlers.ApplicationErrorResponse "Already applied or job not open"
// @Router /jobs/{jobID}/applications [post]
// @Security BearerAuth
func NewApplyHandler(svc Applier, tokenGetter ApplicationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid job id"})
			return
		}

		var req ApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid request body"})
			return
		}

		app, err := svc.Apply(ctx, claims.UserID, claims.UserType, jobID, req.CoverLetter, req.ProposedRate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFreelancer):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrJobNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Job not found"})
			case errors.Is(err, services.ErrJobNotOpen),
				errors.Is(err, services.ErrAlreadyApplied):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(app)
	}
}

// NewMyApplicationsHandler returns an HTTP handler listing the freelancer's applications.
// @Summary List my applications
// @Description Returns the authenticated freelancer's applications with job details, newest first
// @Tags applications
// @Produce json
// @Success 200 {array} models.ApplicationWithJob "Applications"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ApplicationErrorResponse "Not a freelancer"
// @Router /applications/mine [get]
// @Security BearerAuth
func NewMyApplicationsHandler(svc ApplicationLister, tokenGetter ApplicationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		apps, err := svc.MyApplications(ctx, claims.UserID, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFreelancer):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			}
			return
		}
		if apps == nil {
			apps = []models.ApplicationWithJob{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}

// NewReceivedApplicationsHandler returns an HTTP handler listing applications to the recruiter's jobs.
// @Summary List received applications
// @Description Returns the applications submitted to the authenticated recruiter's jobs, newest first
// @Tags applications
// @Produce json
// @Success 200 {array} models.ApplicationWithJob "Applications"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ApplicationErrorResponse "Not a recruiter"
// @Router /applications/received [get]
// @Security BearerAuth
func NewReceivedApplicationsHandler(svc ApplicationLister, tokenGetter ApplicationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		apps, err := svc.ReceivedApplications(ctx, claims.UserID, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotRecruiter):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			}
			return
		}
		if apps == nil {
			apps = []models.ApplicationWithJob{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}

// NewDecideApplicationHandler returns an HTTP handler for accepting or rejecting an application.
// @Summary Decide an application
// @Description Accepts or rejects a pending application to one of the authenticated recruiter's jobs
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationID path int true "Application ID"
// @Param decideRequest body handlers.DecideApplicationRequest true "Decision request"
// @Success 200 {object} models.ApplicationWithJob "Decided application"
// @Failure 400 {object} handlers.ApplicationErrorResponse "Invalid status"
// @Failure 401 {object} handlers.ApplicationErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ApplicationErrorResponse "Not the job owner"
// @Failure 404 {object} handlers.ApplicationErrorResponse "Application not found"
// @Failure 409 {object} handlers.ApplicationErrorResponse "Application already decided"
// @Router /applications/{applicationID} [patch]
// @Security BearerAuth
func NewDecideApplicationHandler(svc ApplicationDecider, tokenGetter ApplicationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		applicationID, err := strconv.ParseInt(chi.URLParam(r, "applicationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid application id"})
			return
		}

		var req DecideApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "invalid request body"})
			return
		}

		app, err := svc.Decide(ctx, claims.UserID, claims.UserType, applicationID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNotRecruiter),
				errors.Is(err, services.ErrNotJobOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrApplicationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Application not found"})
			case errors.Is(err, services.ErrAlreadyDecided):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplicationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(app)
	}
}
