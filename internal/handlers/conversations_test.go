package handlers

import (
	"bytes"
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

func TestStartConversationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockConversationTokener(ctrl)
	mockStarter := NewMockConversationStarter(ctrl)

	token := "valid-token"
	claims := &jwt.Claims{UserID: 1, UserType: "freelancer"}

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful start",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockStarter.EXPECT().
					StartConversation(gomock.Any(), int64(1), int64(2)).
					Return(&models.ConversationDB{ID: 5, User1ID: 1, User2ID: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "self conversation",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: 2, UserType: "recruiter"}, nil)
				mockStarter.EXPECT().
					StartConversation(gomock.Any(), int64(2), int64(2)).
					Return(nil, services.ErrSelfConversation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "other user not found",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockStarter.EXPECT().
					StartConversation(gomock.Any(), int64(1), int64(2)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
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
			handler := NewStartConversationHandler(mockStarter, mockTokenGetter)

			bodyBytes, _ := json.Marshal(StartConversationRequest{UserID: 2})
			req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestListConversationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockConversationTokener(ctrl)
	mockLister := NewMockConversationLister(ctrl)

	token := "valid-token"

	t.Run("returns conversations", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			ListConversations(gomock.Any(), int64(1)).
			Return([]models.ConversationSummary{{ID: 5, OtherUserID: 2, OtherUsername: "bob"}}, nil)

		handler := NewListConversationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/conversations", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var summaries []models.ConversationSummary
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
		assert.Len(t, summaries, 1)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(&jwt.Claims{UserID: 1, UserType: "freelancer"}, nil)
		mockLister.EXPECT().
			ListConversations(gomock.Any(), int64(1)).
			Return(nil, nil)

		handler := NewListConversationsHandler(mockLister, mockTokenGetter)
		req := httptest.NewRequest(http.MethodGet, "/conversations", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}
