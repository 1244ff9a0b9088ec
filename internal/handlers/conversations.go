package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/services"
)

// ConversationTokener defines only the methods needed by the conversation handlers.
type ConversationTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ConversationStarter defines the interface for starting conversations.
type ConversationStarter interface {
	StartConversation(ctx context.Context, viewerID, otherUserID int64) (*models.ConversationDB, error)
}

// ConversationLister defines the interface for listing conversations.
type ConversationLister interface {
	ListConversations(ctx context.Context, viewerID int64) ([]models.ConversationSummary, error)
}

// StartConversationRequest represents the JSON body for starting a conversation
// swagger:model StartConversationRequest
type StartConversationRequest struct {
	// The other participant's user id
	// required: true
	// default: 2
	UserID int64 `json:"user_id"`
}

// ConversationErrorResponse represents an error response for conversation endpoints
// swagger:model ConversationErrorResponse
type ConversationErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewStartConversationHandler returns an HTTP handler for starting a conversation.
// @Summary Start a conversation
// @Description Returns the conversation with the given user, creating it when it does not exist. Starting from either side yields the same conversation.
// @Tags chat
// @Accept json
// @Produce json
// @Param startConversationRequest body handlers.StartConversationRequest true "Start conversation request"
// @Success 200 {object} models.ConversationDB "Conversation"
// @Failure 400 {object} handlers.ConversationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ConversationErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ConversationErrorResponse "User not found"
// @Router /conversations [post]
// @Security BearerAuth
func NewStartConversationHandler(svc ConversationStarter, tokenGetter ConversationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req StartConversationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConversationErrorResponse{Error: "invalid request body"})
			return
		}

		conv, err := svc.StartConversation(ctx, claims.UserID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfConversation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConversationErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConversationErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConversationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(conv)
	}
}

// NewListConversationsHandler returns an HTTP handler listing the viewer's conversations.
// @Summary List conversations
// @Description Returns the authenticated user's conversations with last message and unread count, most recently active first
// @Tags chat
// @Produce json
// @Success 200 {array} models.ConversationSummary "Conversations"
// @Failure 401 {object} handlers.ConversationErrorResponse "Unauthorized"
// @Router /conversations [get]
// @Security BearerAuth
func NewListConversationsHandler(svc ConversationLister, tokenGetter ConversationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		summaries, err := svc.ListConversations(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConversationErrorResponse{Error: "Internal server error"})
			return
		}
		if summaries == nil {
			summaries = []models.ConversationSummary{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summaries)
	}
}
