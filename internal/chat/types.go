package chat

import "time"

const (
	DefaultChatTimeout   = 60 * time.Second
	DefaultUploadTimeout = 120 * time.Second

	DefaultWelcomeMessage = "Hi! I'm Arkive AI. Upload a document and ask me anything about it!"

	MsgChatFailed      = "Error connecting to backend. Make sure the server is running."
	MsgUploadFailed    = "Upload failed. Please try again."
	MsgUploadSucceeded = "**%s** uploaded successfully! %d chunks indexed."
	MsgRetentionPerm   = "Stored in the permanent knowledge base."
	MsgRetentionTemp   = "Temporary upload: expires in 7 days."
)

// Config configures one orchestrator. The backend base URL lives in the injected client.
type Config struct {
	OwnerID        string
	WelcomeMessage string
	ChatTimeout    time.Duration
	UploadTimeout  time.Duration
}

// Status reports the busy flags of the orchestrator's call classes.
type Status struct {
	Sending   bool
	Uploading bool
}
