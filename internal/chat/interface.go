package chat

import (
	"context"

	"arkive-client/internal/model"
)

// UseCase orchestrates one conversation: it owns the transcript, the chat
// lane and the session binding of a single owner.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// SendQuery appends the user turn, asks the backend and appends exactly one
	// assistant turn. Backend failures become a fallback turn, not an error.
	SendQuery(ctx context.Context, text string) (model.Message, error)
	// UploadDocument ingests file and appends one assistant notice with the outcome.
	UploadDocument(ctx context.Context, file model.File) (model.Message, error)
	// LoadSession replaces the transcript with a stored session and binds to it.
	LoadSession(ctx context.Context, sessionID string) error
	// NewChat unbinds and resets the transcript to the welcome turn.
	NewChat(ctx context.Context) error
	ListSessions(ctx context.Context) []model.SessionEntry
	Conversation() model.Conversation
	Status() Status
	// Wait blocks until background work (session refresh, events) has finished.
	Wait()
}
