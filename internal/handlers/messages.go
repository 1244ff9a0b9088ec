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

// messageTimeLayout is the timestamp format of the polling endpoint.
const messageTimeLayout = "2006-01-02 15:04"

// MessageTokener defines only the methods needed by the message handlers.
type MessageTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MessageSender defines the interface for sending messages.
type MessageSender interface {
	SendMessage(ctx context.Context, senderID, conversationID int64, content string) (*models.MessageDB, error)
}

// MessageFetcher defines the interface for polling messages.
type MessageFetcher interface {
	FetchMessages(ctx context.Context, viewerID, conversationID, afterID int64) ([]models.MessageWithSender, error)
}

// UnreadCounter defines the interface for the unread badge.
type UnreadCounter interface {
	UnreadCount(ctx context.Context, viewerID int64) (int64, error)
}

// SendMessageRequest represents the JSON body for sending a message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Message text
	// required: true
	// default: hello
	Content string `json:"content"`
}

// MessageItem represents one message in the polling response
// swagger:model MessageItem
type MessageItem struct {
	// Message id, pass the highest one back as last_message_id
	// default: 10
	ID int64 `json:"id"`

	// Message text
	// default: hello
	Content string `json:"content"`

	// Sending user id
	// default: 1
	SenderID int64 `json:"sender_id"`

	// Sending user's name
	// default: john_doe
	SenderUsername string `json:"sender_username"`

	// Send time
	// default: 2025-01-02 15:04
	CreatedAt string `json:"created_at"`
}

// UnreadCountResponse represents the unread message badge response
// swagger:model UnreadCountResponse
type UnreadCountResponse struct {
	// Unread message count across all conversations
	// default: 3
	UnreadCount int64 `json:"unread_count"`
}

// MessageErrorResponse represents an error response for message endpoints
// swagger:model MessageErrorResponse
type MessageErrorResponse struct {
	// Error message
	// default: Conversation not found
	Error string `json:"error"`
}

// NewSendMessageHandler returns an HTTP handler for sending a message.
// @Summary Send a message
// @Description Appends a message to the conversation and notifies the other participant
// @Tags chat
// @Accept json
// @Produce json
// @Param conversationID path int true "Conversation ID"
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message request"
// @Success 201 {object} handlers.MessageItem "Sent message"
// @Failure 400 {object} handlers.MessageErrorResponse "Empty message"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.MessageErrorResponse "Not a participant"
// @Failure 404 {object} handlers.MessageErrorResponse "Conversation not found"
// @Router /conversations/{conversationID}/messages [post]
// @Security BearerAuth
func NewSendMessageHandler(svc MessageSender, tokenGetter MessageTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		conversationID, err := strconv.ParseInt(chi.URLParam(r, "conversationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid conversation id"})
			return
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid request body"})
			return
		}

		message, err := svc.SendMessage(ctx, claims.UserID, conversationID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyMessage):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNotParticipant):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrConversationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Conversation not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageItem{
			ID:        message.ID,
			Content:   message.Content,
			SenderID:  message.SenderID,
			CreatedAt: message.CreatedAt.Format(messageTimeLayout),
		})
	}
}

// NewFetchMessagesHandler returns an HTTP handler polling a conversation for messages.
// @Summary Fetch messages
// @Description Returns the conversation's messages newer than last_message_id, oldest first, and marks the viewer's unread messages as read. Omit last_message_id for the full history.
// @Tags chat
// @Produce json
// @Param conversationID path int true "Conversation ID"
// @Param last_message_id query int false "Highest message id already seen"
// @Success 200 {array} handlers.MessageItem "New messages"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.MessageErrorResponse "Not a participant"
// @Failure 404 {object} handlers.MessageErrorResponse "Conversation not found"
// @Router /conversations/{conversationID}/messages [get]
// @Security BearerAuth
func NewFetchMessagesHandler(svc MessageFetcher, tokenGetter MessageTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		conversationID, err := strconv.ParseInt(chi.URLParam(r, "conversationID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid conversation id"})
			return
		}

		var afterID int64
		if raw := r.URL.Query().Get("last_message_id"); raw != "" {
			afterID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid last_message_id"})
				return
			}
		}

		messages, err := svc.FetchMessages(ctx, claims.UserID, conversationID, afterID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotParticipant):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrConversationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Conversation not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Internal server error"})
			}
			return
		}

		items := make([]MessageItem, 0, len(messages))
		for _, m := range messages {
			items = append(items, MessageItem{
				ID:             m.ID,
				Content:        m.Content,
				SenderID:       m.SenderID,
				SenderUsername: m.SenderUsername,
				CreatedAt:      m.CreatedAt.Format(messageTimeLayout),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewUnreadCountHandler returns an HTTP handler for the unread message badge.
// @Summary Unread message count
// @Description Returns the authenticated user's unread message count across all conversations
// @Tags chat
// @Produce json
// @Success 200 {object} handlers.UnreadCountResponse "Unread count"
// @Failure 401 {object} handlers.MessageErrorResponse "Unauthorized"
// @Router /messages/unread_count [get]
// @Security BearerAuth
func NewUnreadCountHandler(svc UnreadCounter, tokenGetter MessageTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		count, err := svc.UnreadCount(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UnreadCountResponse{UnreadCount: count})
	}
}
