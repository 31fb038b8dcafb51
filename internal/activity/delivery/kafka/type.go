package kafka

import "time"

const (
	// TopicClientActivity is the default topic for client activity events.
	TopicClientActivity = "arkive.client.activity"
)

// ActivityMessage is the wire form of an activity event.
type ActivityMessage struct {
	EventType  string         `json:"event_type"`
	UserID     string         `json:"user_id"`
	SessionID  string         `json:"session_id,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
