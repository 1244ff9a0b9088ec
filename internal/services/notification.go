package services

import (
	"context"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// NotificationReader defines read-only operations for notifications.
type NotificationReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationMarker marks a user's notifications as read.
type NotificationMarker interface {
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

// NotificationService handles the notification feed.
type NotificationService struct {
	reader NotificationReader
	marker NotificationMarker
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(reader NotificationReader, marker NotificationMarker) *NotificationService {
	return &NotificationService{reader: reader, marker: marker}
}

// Drain returns the user's notifications, newest first, and marks them all
// as read. The returned items keep the read state they had at fetch time,
// so callers can still tell which ones were new.
func (svc *NotificationService) Drain(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	notifications, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "userID", userID, "err", err)
		return nil, err
	}

	if _, err := svc.marker.MarkAllRead(ctx, userID); err != nil {
		logger.Log.Errorw("failed to mark notifications read", "userID", userID, "err", err)
		return nil, err
	}

	return notifications, nil
}
