package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// publishActivity publishes a marketplace activity event to Kafka.
// Publishing is best effort: a nil writer or a broker failure is logged
// and never fails the request that produced the event.
func publishActivity(ctx context.Context, w KafkaWriter, eventType string, actorID, subjectID int64) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", eventType)
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		EventType: eventType,
		ActorID:   actorID,
		SubjectID: subjectID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "event_type", eventType)
	}
}
