package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "INGESTION_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// IngestionCompleted is emitted after a refresh run finishes, carrying
// per-subreddit counts for downstream listeners.
func IngestionCompleted(fetched, stored int, subreddits []string) Event {
	return BaseEvent{
		Type: "INGESTION_COMPLETED",
		Data: map[string]interface{}{
			"fetched":    fetched,
			"stored":     stored,
			"subreddits": subreddits,
		},
		OccurredAt: time.Now(),
	}
}
