package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// Error variables
var (
	ErrSelfConversation     = errors.New("cannot start a conversation with yourself")
	ErrUserNotFound         = errors.New("user not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of the conversation")
	ErrEmptyMessage         = errors.New("message content is empty")
)

// ConversationReader defines read-only operations for conversations.
type ConversationReader interface {
	GetByID(ctx context.Context, id int64) (*models.ConversationDB, error)
	ListForUser(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
}

// ConversationWriter defines write operations for conversations.
type ConversationWriter interface {
	GetOrCreate(ctx context.Context, userA, userB int64) (*models.ConversationDB, error)
	Touch(ctx context.Context, id int64, at time.Time) error
}

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	ListAfter(ctx context.Context, conversationID, afterID int64) ([]models.MessageWithSender, error)
	UnreadCountForUser(ctx context.Context, userID int64) (int64, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, message *models.MessageDB) error
	MarkRead(ctx context.Context, conversationID, receiverID int64) (int64, error)
}

// UserGetter looks up a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// NotificationSaver creates notifications for users.
type NotificationSaver interface {
	Save(ctx context.Context, userID int64, message, notificationType string) (int64, error)
}

// ChatService handles conversations and messaging.
type ChatService struct {
	convReader    ConversationReader
	convWriter    ConversationWriter
	msgReader     MessageReader
	msgWriter     MessageWriter
	users         UserGetter
	notifications NotificationSaver
	kafkaWriter   KafkaWriter
}

// NewChatService creates a new ChatService instance.
func NewChatService(
	convReader ConversationReader,
	convWriter ConversationWriter,
	msgReader MessageReader,
	msgWriter MessageWriter,
	users UserGetter,
	notifications NotificationSaver,
	kafkaWriter KafkaWriter,
) *ChatService {
	return &ChatService{
		convReader:    convReader,
		convWriter:    convWriter,
		msgReader:     msgReader,
		msgWriter:     msgWriter,
		users:         users,
		notifications: notifications,
		kafkaWriter:   kafkaWriter,
	}
}

// StartConversation returns the conversation between the viewer and the
// other user, creating it when it does not exist yet. Starting the same
// conversation from either side yields the same record.
func (svc *ChatService) StartConversation(ctx context.Context, viewerID, otherUserID int64) (*models.ConversationDB, error) {
	if viewerID == otherUserID {
		return nil, ErrSelfConversation
	}

	other, err := svc.users.GetByID(ctx, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", otherUserID, "err", err)
		return nil, err
	}
	if other == nil {
		return nil, ErrUserNotFound
	}

	conv, err := svc.convWriter.GetOrCreate(ctx, viewerID, otherUserID)
	if err != nil {
		logger.Log.Errorw("failed to get or create conversation", "viewerID", viewerID, "otherUserID", otherUserID, "err", err)
		return nil, err
	}
	return conv, nil
}

// ListConversations returns the viewer's conversations, most recently
// active first.
func (svc *ChatService) ListConversations(ctx context.Context, viewerID int64) ([]models.ConversationSummary, error) {
	summaries, err := svc.convReader.ListForUser(ctx, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to list conversations", "viewerID", viewerID, "err", err)
		return nil, err
	}
	return summaries, nil
}

// SendMessage appends a message to the conversation, bumps the
// conversation's activity timestamp and notifies the receiver.
func (svc *ChatService) SendMessage(ctx context.Context, senderID, conversationID int64, content string) (*models.MessageDB, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := svc.convReader.GetByID(ctx, conversationID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "err", err)
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	receiverID, ok := conv.OtherParticipant(senderID)
	if !ok {
		return nil, ErrNotParticipant
	}

	// Resolved before the first write so a lookup failure cannot leave a
	// committed message without its notification.
	sender, err := svc.users.GetByID(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to get sender", "senderID", senderID, "err", err)
		return nil, err
	}
	senderName := "someone"
	if sender != nil {
		senderName = sender.Username
	}

	message := &models.MessageDB{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
	}
	if err := svc.msgWriter.Save(ctx, message); err != nil {
		logger.Log.Errorw("failed to save message", "conversationID", conversationID, "senderID", senderID, "err", err)
		return nil, err
	}

	if err := svc.convWriter.Touch(ctx, conversationID, message.CreatedAt); err != nil {
		logger.Log.Errorw("failed to touch conversation", "conversationID", conversationID, "err", err)
		return nil, err
	}

	notification := fmt.Sprintf("New message from %s", senderName)
	if _, err := svc.notifications.Save(ctx, receiverID, notification, models.NotificationTypeNewMessage); err != nil {
		logger.Log.Errorw("failed to save notification", "receiverID", receiverID, "err", err)
		return nil, err
	}

	publishActivity(ctx, svc.kafkaWriter, models.ActivityNewMessage, senderID, message.ID)

	return message, nil
}

// FetchMessages returns the conversation's messages newer than afterID and
// marks the viewer's unread messages in it as read. afterID zero fetches
// the full history.
func (svc *ChatService) FetchMessages(ctx context.Context, viewerID, conversationID, afterID int64) ([]models.MessageWithSender, error) {
	conv, err := svc.convReader.GetByID(ctx, conversationID)
	if err != nil {
		logger.Log.Errorw("failed to get conversation", "conversationID", conversationID, "err", err)
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if _, ok := conv.OtherParticipant(viewerID); !ok {
		return nil, ErrNotParticipant
	}

	messages, err := svc.msgReader.ListAfter(ctx, conversationID, afterID)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "conversationID", conversationID, "err", err)
		return nil, err
	}

	if _, err := svc.msgWriter.MarkRead(ctx, conversationID, viewerID); err != nil {
		logger.Log.Errorw("failed to mark messages read", "conversationID", conversationID, "viewerID", viewerID, "err", err)
		return nil, err
	}

	return messages, nil
}

// UnreadCount returns the viewer's unread message count across all
// conversations.
func (svc *ChatService) UnreadCount(ctx context.Context, viewerID int64) (int64, error) {
	count, err := svc.msgReader.UnreadCountForUser(ctx, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to count unread messages", "viewerID", viewerID, "err", err)
		return 0, err
	}
	return count, nil
}
