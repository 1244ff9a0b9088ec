package models

// ActivityEvent is the payload published to Kafka after a mutating action
// commits: a job posting, an application submission or a new message.
type ActivityEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	EventType string `json:"event_type"` // EventType is one of "job_posted", "application_submitted", "new_message".
	ActorID   int64  `json:"actor_id"`   // ActorID is the user who performed the action.
	SubjectID int64  `json:"subject_id"` // SubjectID is the id of the entity acted on (job, application or message).
}
