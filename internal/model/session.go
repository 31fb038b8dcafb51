package model

// SessionState is the binding state of the active conversation.
type SessionState string

const (
	// SessionUnbound means no backend id has been assigned yet.
	SessionUnbound SessionState = "UNBOUND"
	// SessionBound means the conversation id is fixed for the rest of its lifetime.
	SessionBound SessionState = "BOUND"
)

// SessionEntry is the summary projection shown in the session list.
type SessionEntry struct {
	ID         string
	LastActive Timestamp
}

// Conversation is a snapshot of the active conversation.
type Conversation struct {
	ID       string
	OwnerID  string
	State    SessionState
	Messages []Message
}
