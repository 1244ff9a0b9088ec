package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/services"
	"github.com/stretchr/testify/assert"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestApplyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockApplicationTokener(ctrl)
	mockApplier := NewMockApplier(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 1, UserType: "freelancer"}
	rate := 80.0

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful apply",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockApplier.EXPECT().
					Apply(gomock.Any(), int64(1), "freelancer", int64(3), "hire me", &rate).
					Return(&models.ApplicationDB{ID: 9, JobID: 3, FreelancerID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "not a freelancer",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: 7, UserType: "recruiter"}, nil)
				mockApplier.EXPECT().
					Apply(gomock.Any(), int64(7), "recruiter", int64(3), "hire me", &rate).
					Return(nil, services.ErrNotFreelancer)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "job not found",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockApplier.EXPECT().
					Apply(gomock.Any(), int64(1), "freelancer", int64(3), "hire me", &rate).
					Return(nil, services.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "already applied",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockApplier.EXPECT().
					Apply(gomock.Any(), int64(1), "freelancer", int64(3), "hire me", &rate).
					Return(nil, services.ErrAlreadyApplied)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "job not open",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockApplier.EXPECT().
					Apply(gomock.Any(), int64(1), "freelancer", int64(3), "hire me", &rate).
					Return(nil, services.ErrJobNotOpen)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unauthorized",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewApplyHandler(mockApplier, mockTokenGetter)

			bodyBytes, _ := json.Marshal(ApplyRequest{CoverLetter: "hire me", ProposedRate: &rate})
			req := httptest.NewRequest(http.MethodPost, "/jobs/3/applications", bytes.NewBuffer(bodyBytes))
			req = withURLParam(req, "jobID", "3")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestMyApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockApplicationTokener(ctrl)
	mockLister := NewMockApplicationLister(ctrl)

	token := "valid-token"

	t.Run("returns applications", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			MyApplications(gomock.Any(), int64(1), "freelancer").
			Return([]models.ApplicationWithJob{{ApplicationDB: models.ApplicationDB{ID: 9}}}, nil)

		handler := NewMyApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/applications/mine", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			MyApplications(gomock.Any(), int64(1), "freelancer").
			Return(nil, nil)

		handler := NewMyApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/applications/mine", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestReceivedApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockApplicationTokener(ctrl)
	mockLister := NewMockApplicationLister(ctrl)

	token := "valid-token"

	t.Run("not a recruiter", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			ReceivedApplications(gomock.Any(), int64(1), "freelancer").
			Return(nil, services.ErrNotRecruiter)

		handler := NewReceivedApplicationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/applications/received", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDecideApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockApplicationTokener(ctrl)
	mockDecider := NewMockApplicationDecider(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 7, UserType: "recruiter"}

	tests := []struct {
		name           string
		status         string
		decideErr      error
		expectedStatus int
	}{
		{name: "accept", status: "accepted", expectedStatus: http.StatusOK},
		{name: "invalid status", status: "maybe", decideErr: services.ErrInvalidStatus, expectedStatus: http.StatusBadRequest},
		{name: "not the job owner", status: "accepted", decideErr: services.ErrNotJobOwner, expectedStatus: http.StatusForbidden},
		{name: "not found", status: "accepted", decideErr: services.ErrApplicationNotFound, expectedStatus: http.StatusNotFound},
		{name: "already decided", status: "rejected", decideErr: services.ErrAlreadyDecided, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return(token, nil)
			mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
				Return(claims, nil)

			var app *models.ApplicationWithJob
			if tt.decideErr == nil {
				app = &models.ApplicationWithJob{ApplicationDB: models.ApplicationDB{ID: 9, Status: tt.status}}
			}
			mockDecider.EXPECT().
				Decide(gomock.Any(), int64(7), "recruiter", int64(9), tt.status).
				Return(app, tt.decideErr)

			handler := NewDecideApplicationHandler(mockDecider, mockTokenGetter)

			bodyBytes, _ := json.Marshal(DecideApplicationRequest{Status: tt.status})
			req := httptest.NewRequest(http.MethodPatch, "/applications/9", bytes.NewBuffer(bodyBytes))
			req = withURLParam(req, "applicationID", "9")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
