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

func TestPostJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockJobTokener(ctrl)
	mockPoster := NewMockJobPoster(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 7, UserType: "recruiter"}
	budget := 500.0

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful post",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockPoster.EXPECT().
					PostJob(gomock.Any(), int64(7), "recruiter", services.JobInput{
						Title:          "Go developer",
						Description:    "Build services",
						SkillsRequired: "go,sql",
						Budget:         &budget,
						Duration:       "2 weeks",
						Location:       "remote",
					}).
					Return(&models.JobDB{ID: 1, Title: "Go developer", RecruiterID: 7, Status: models.JobStatusOpen}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "negative budget",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockPoster.EXPECT().
					PostJob(gomock.Any(), int64(7), "recruiter", gomock.Any()).
					Return(nil, services.ErrNegativeBudget)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unauthorized missing token",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "not a recruiter",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: 7, UserType: "freelancer"}, nil)
				mockPoster.EXPECT().
					PostJob(gomock.Any(), int64(7), "freelancer", gomock.Any()).
					Return(nil, services.ErrNotRecruiter)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing fields",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockPoster.EXPECT().
					PostJob(gomock.Any(), int64(7), "recruiter", gomock.Any()).
					Return(nil, services.ErrMissingFields)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewPostJobHandler(mockPoster, mockTokenGetter)

			bodyBytes, _ := json.Marshal(PostJobRequest{
				Title:          "Go developer",
				Description:    "Build services",
				SkillsRequired: "go,sql",
				Budget:         &budget,
				Duration:       "2 weeks",
				Location:       "remote",
			})
			req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestListJobsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockJobLister(ctrl)

	t.Run("returns open jobs", func(t *testing.T) {
		mockLister.EXPECT().
			ListOpenJobs(gomock.Any()).
			Return([]models.JobDB{{ID: 1, Title: "Go developer"}}, nil)

		handler := NewListJobsHandler(mockLister)
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var jobs []models.JobDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockLister.EXPECT().
			ListOpenJobs(gomock.Any()).
			Return(nil, nil)

		handler := NewListJobsHandler(mockLister)
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestGetJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGetter := NewMockJobGetter(ctrl)

	newRequest := func(jobID string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("jobID", jobID)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("found", func(t *testing.T) {
		mockGetter.EXPECT().
			GetJob(gomock.Any(), int64(1)).
			Return(&models.JobDB{ID: 1, Title: "Go developer"}, nil)

		handler := NewGetJobHandler(mockGetter)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest("1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockGetter.EXPECT().
			GetJob(gomock.Any(), int64(99)).
			Return(nil, services.ErrJobNotFound)

		handler := NewGetJobHandler(mockGetter)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest("99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		handler := NewGetJobHandler(mockGetter)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest("abc"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMyJobsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockJobTokener(ctrl)
	mockLister := NewMockJobLister(ctrl)

	token := "valid-token"

	t.Run("returns recruiter jobs", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 7, UserType: "recruiter"}, nil)
		mockLister.EXPECT().
			ListMyJobs(gomock.Any(), int64(7), "recruiter").
			Return([]models.JobDB{{ID: 1, RecruiterID: 7}}, nil)

		handler := NewMyJobsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/jobs/mine", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not a recruiter", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			ListMyJobs(gomock.Any(), int64(1), "freelancer").
			Return(nil, services.ErrNotRecruiter)

		handler := NewMyJobsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/jobs/mine", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
