package model

import "time"

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Source is one citation attached to an assistant answer. Page is always >= MinSourcePage.
type Source struct {
	Name       string
	Page       int
	ChunkIndex int
}

// MinSourcePage is the lowest page number a Source may carry.
const MinSourcePage = 1

// NormalizePage raises page numbers below MinSourcePage to MinSourcePage.
// The backend reports 0 for the first page of a PDF and for unknown pages.
func NormalizePage(page int) int {
	if page < MinSourcePage {
		return MinSourcePage
	}
	return page
}

// Message represents a single conversation turn.
// Content of assistant turns is Markdown and must be rendered as text.
type Message struct {
	Role    Role
	Content string
	Sources []Source
	// Confidence is in [0,100]; 0 means not applicable.
	Confidence int
	// Flagged is set on assistant turns the backend moderation rejected or altered.
	Flagged bool
	// Failed marks the local fallback turn written when the backend could not be reached.
	Failed    bool
	CreatedAt time.Time
}

// NewUserMessage builds a user turn.
func NewUserMessage(content string, now time.Time) Message {
	return Message{
		Role:      RoleUser,
		Content:   content,
		Sources:   []Source{},
		CreatedAt: now,
	}
}

// NewAssistantNotice builds an assistant turn without citations, used for
// greetings and synthesized confirmations.
func NewAssistantNotice(content string, now time.Time) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Sources:   []Source{},
		CreatedAt: now,
	}
}

// NewFailureMessage builds the fallback assistant turn for a transport or server failure.
func NewFailureMessage(content string, now time.Time) Message {
	m := NewAssistantNotice(content, now)
	m.Failed = true
	return m
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	c := m
	if m.Sources != nil {
		c.Sources = make([]Source, len(m.Sources))
		copy(c.Sources, m.Sources)
	}
	return c
}

// ClampConfidence rounds a backend score to the [0,100] integer range.
func ClampConfidence(score float64) int {
	switch {
	case score <= 0:
		return 0
	case score >= 100:
		return 100
	default:
		return int(score + 0.5)
	}
}
