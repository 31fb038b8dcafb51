package session

import (
	"context"

	"arkive-client/internal/model"
)

// UseCase tracks which backend conversation the client is bound to and
// reads the owner's stored sessions.
//
//go:generate mockery --name UseCase
type UseCase interface {
	State() model.SessionState
	ID() string
	// Bind fixes the conversation id. Only allowed while unbound.
	Bind(id string) error
	// Enter binds directly to a past session after its history was loaded.
	Enter(id string) error
	// Unbind starts a fresh conversation. Nothing is deleted remotely.
	Unbind()
	// List fetches the owner's sessions. Failures degrade to an empty list.
	List(ctx context.Context, ownerID string) []model.SessionEntry
	// Refresh runs List in the background.
	Refresh(ctx context.Context, ownerID string)
	// Fetch returns the stored messages of a session, in order.
	Fetch(ctx context.Context, id string) ([]model.Message, error)
	// Entries returns the last fetched session list.
	Entries() []model.SessionEntry
	// Wait blocks until background refreshes finish.
	Wait()
}
