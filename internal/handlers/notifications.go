package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// NotificationTokener defines only the methods needed by the notification handler.
type NotificationTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// NotificationDrainer defines the interface that the notification service must implement.
type NotificationDrainer interface {
	Drain(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationErrorResponse represents an error response for the notification endpoint
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewNotificationsHandler returns an HTTP handler draining the notification feed.
// @Summary List notifications
// @Description Returns the authenticated user's notifications, newest first, and marks them all as read. The returned items keep the read state they had at fetch time.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.NotificationDB "Notifications"
// @Failure 401 {object} handlers.NotificationErrorResponse "Unauthorized"
// @Router /notifications [get]
// @Security BearerAuth
func NewNotificationsHandler(svc NotificationDrainer, tokenGetter NotificationTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		notifications, err := svc.Drain(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			return
		}
		if notifications == nil {
			notifications = []models.NotificationDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(notifications)
	}
}
