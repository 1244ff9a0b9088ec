package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAdminDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockReporter := NewMockDashboardReporter(ctrl)

	token := "valid-token"

	t.Run("returns dashboard", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockReporter.EXPECT().
			AdminDashboard(gomock.Any(), "admin").
			Return(&models.AdminDashboard{Totals: models.DashboardTotals{Users: 4}}, nil)

		handler := NewAdminDashboardHandler(mockReporter, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var dashboard models.AdminDashboard
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dashboard))
		assert.Equal(t, int64(4), dashboard.Totals.Users)
	})

	t.Run("not an admin", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockReporter.EXPECT().
			AdminDashboard(gomock.Any(), "freelancer").
			Return(nil, services.ErrNotAdmin)

		handler := NewAdminDashboardHandler(mockReporter, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		handler := NewAdminDashboardHandler(mockReporter, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdminListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockLister := NewMockAdminUserLister(ctrl)

	token := "valid-token"

	t.Run("returns users", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListUsers(gomock.Any(), "admin").
			Return([]models.UserDB{{ID: 1, Username: "alice"}}, nil)

		handler := NewAdminListUsersHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListUsers(gomock.Any(), "admin").
			Return(nil, nil)

		handler := NewAdminListUsersHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestAdminListJobsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockLister := NewMockAdminJobLister(ctrl)

	token := "valid-token"

	t.Run("returns jobs", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListJobs(gomock.Any(), "admin").
			Return([]models.JobDB{{ID: 1, Title: "Go developer", Status: models.JobStatusOpen}}, nil)

		handler := NewAdminListJobsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var jobs []models.JobDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
		assert.Equal(t, "Go developer", jobs[0].Title)
	})

	t.Run("not an admin", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "recruiter"}, nil)
		mockLister.EXPECT().
			ListJobs(gomock.Any(), "recruiter").
			Return(nil, services.ErrNotAdmin)

		handler := NewAdminListJobsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListJobs(gomock.Any(), "admin").
			Return(nil, nil)

		handler := NewAdminListJobsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestAdminListApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockLister := NewMockAdminApplicationLister(ctrl)

	token := "valid-token"

	t.Run("returns applications", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListApplications(gomock.Any(), "admin").
			Return([]models.ApplicationWithJob{{
				ApplicationDB: models.ApplicationDB{ID: 1, JobID: 2, FreelancerID: 3},
				JobTitle:      "Go developer",
			}}, nil)

		handler := NewAdminListApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var apps []models.ApplicationWithJob
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apps))
		assert.Len(t, apps, 1)
		assert.Equal(t, "Go developer", apps[0].JobTitle)
	})

	t.Run("not an admin", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			ListApplications(gomock.Any(), "freelancer").
			Return(nil, services.ErrNotAdmin)

		handler := NewAdminListApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 9, UserType: "admin"}, nil)
		mockLister.EXPECT().
			ListApplications(gomock.Any(), "admin").
			Return(nil, nil)

		handler := NewAdminListApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestAdminDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockDeleter := NewMockAdminUserDeleter(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 9, UserType: "admin"}

	tests := []struct {
		name           string
		deleteErr      error
		expectedStatus int
	}{
		{name: "successful delete", expectedStatus: http.StatusOK},
		{name: "target is an admin", deleteErr: services.ErrCannotDeleteAdmin, expectedStatus: http.StatusForbidden},
		{name: "user not found", deleteErr: services.ErrUserNotFound, expectedStatus: http.StatusNotFound},
		{name: "internal error", deleteErr: errors.New("db error"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return(token, nil)
			mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
				Return(claims, nil)
			mockDeleter.EXPECT().
				DeleteUser(gomock.Any(), "admin", int64(2)).
				Return(tt.deleteErr)

			handler := NewAdminDeleteUserHandler(mockDeleter, mockTokenGetter)

			req := httptest.NewRequest(http.MethodDelete, "/admin/users/2", nil)
			req = withURLParam(req, "userID", "2")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestAdminDeleteJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockAdminTokener(ctrl)
	mockDeleter := NewMockAdminJobDeleter(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 9, UserType: "admin"}

	tests := []struct {
		name           string
		deleteErr      error
		expectedStatus int
	}{
		{name: "successful delete", expectedStatus: http.StatusOK},
		{name: "not an admin", deleteErr: services.ErrNotAdmin, expectedStatus: http.StatusForbidden},
		{name: "job not found", deleteErr: services.ErrJobNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return(token, nil)
			mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
				Return(claims, nil)
			mockDeleter.EXPECT().
				DeleteJob(gomock.Any(), "admin", int64(3)).
				Return(tt.deleteErr)

			handler := NewAdminDeleteJobHandler(mockDeleter, mockTokenGetter)

			req := httptest.NewRequest(http.MethodDelete, "/admin/jobs/3", nil)
			req = withURLParam(req, "jobID", "3")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
