package activity

import "time"

// EventType names one client-side activity.
type EventType string

const (
	EventChatAnswered         EventType = "chat.answered"
	EventChatFailed           EventType = "chat.failed"
	EventDocumentUploaded     EventType = "document.uploaded"
	EventDocumentUploadFailed EventType = "document.upload_failed"
	EventComplianceChecked    EventType = "compliance.checked"
	EventComplianceFailed     EventType = "compliance.failed"
	EventSessionBound         EventType = "session.bound"
)

// Event is one settled client operation.
type Event struct {
	Type       EventType
	OwnerID    string
	SessionID  string
	Attributes map[string]any
	OccurredAt time.Time
}
