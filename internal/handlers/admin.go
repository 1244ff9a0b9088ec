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

// AdminTokener defines only the methods needed by the admin handlers.
type AdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DashboardReporter defines the interface that the report service must implement.
type DashboardReporter interface {
	AdminDashboard(ctx context.Context, userType string) (*models.AdminDashboard, error)
}

// AdminUserLister defines the interface for the admin user listing.
type AdminUserLister interface {
	ListUsers(ctx context.Context, userType string) ([]models.UserDB, error)
}

// AdminJobLister defines the interface for the admin job listing.
type AdminJobLister interface {
	ListJobs(ctx context.Context, userType string) ([]models.JobDB, error)
}

// AdminApplicationLister defines the interface for the admin application listing.
type AdminApplicationLister interface {
	ListApplications(ctx context.Context, userType string) ([]models.ApplicationWithJob, error)
}

// AdminUserDeleter defines the interface for deleting user accounts.
type AdminUserDeleter interface {
	DeleteUser(ctx context.Context, userType string, id int64) error
}

// AdminJobDeleter defines the interface for deleting job postings.
type AdminJobDeleter interface {
	DeleteJob(ctx context.Context, userType string, id int64) error
}

// AdminDeleteResponse represents a successful admin deletion
// swagger:model AdminDeleteResponse
type AdminDeleteResponse struct {
	// Success message
	// default: Deleted
	Message string `json:"message"`
}

// AdminErrorResponse represents an error response for admin endpoints
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// NewAdminDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Admin dashboard
// @Description Returns user, job and application statistics, the recent activity feed, popular jobs, totals and recent email validations
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminDashboard "Dashboard"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin"
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewAdminDashboardHandler(svc DashboardReporter, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		dashboard, err := svc.AdminDashboard(ctx, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dashboard)
	}
}

// NewAdminListUsersHandler returns an HTTP handler listing non-admin accounts.
// @Summary List users
// @Description Returns every non-admin account, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserDB "Users"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminListUsersHandler(svc AdminUserLister, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		users, err := svc.ListUsers(ctx, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewAdminListJobsHandler returns an HTTP handler listing every job posting.
// @Summary List jobs
// @Description Returns every job posting regardless of status, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.JobDB "Jobs"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin"
// @Router /admin/jobs [get]
// @Security BearerAuth
func NewAdminListJobsHandler(svc AdminJobLister, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		jobs, err := svc.ListJobs(ctx, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
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

// NewAdminListApplicationsHandler returns an HTTP handler listing every application.
// @Summary List applications
// @Description Returns every application across all jobs, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.ApplicationWithJob "Applications"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin"
// @Router /admin/applications [get]
// @Security BearerAuth
func NewAdminListApplicationsHandler(svc AdminApplicationLister, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		apps, err := svc.ListApplications(ctx, claims.UserType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
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

// NewAdminDeleteUserHandler returns an HTTP handler deleting a user account.
// @Summary Delete a user
// @Description Removes a non-admin account together with everything it owns
// @Tags admin
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} handlers.AdminDeleteResponse "User deleted"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin or target is an admin"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/users/{userID} [delete]
// @Security BearerAuth
func NewAdminDeleteUserHandler(svc AdminUserDeleter, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "invalid user id"})
			return
		}

		if err := svc.DeleteUser(ctx, claims.UserType, id); err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin),
				errors.Is(err, services.ErrCannotDeleteAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminDeleteResponse{Message: "User deleted"})
	}
}

// NewAdminDeleteJobHandler returns an HTTP handler deleting a job posting.
// @Summary Delete a job
// @Description Removes a job posting together with its applications
// @Tags admin
// @Produce json
// @Param jobID path int true "Job ID"
// @Success 200 {object} handlers.AdminDeleteResponse "Job deleted"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an admin"
// @Failure 404 {object} handlers.AdminErrorResponse "Job not found"
// @Router /admin/jobs/{jobID} [delete]
// @Security BearerAuth
func NewAdminDeleteJobHandler(svc AdminJobDeleter, tokenGetter AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "invalid job id"})
			return
		}

		if err := svc.DeleteJob(ctx, claims.UserType, id); err != nil {
			switch {
			case errors.Is(err, services.ErrNotAdmin):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrJobNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Job not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminDeleteResponse{Message: "Job deleted"})
	}
}
