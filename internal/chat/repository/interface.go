package repository

import "arkive-client/internal/model"

// MessageStore is the ordered, append-only transcript of the active conversation.
// Readers may call List and Len concurrently; a single writer mutates it.
//
//go:generate mockery --name MessageStore
type MessageStore interface {
	// Append adds msg at the end of the transcript.
	Append(msg model.Message) error
	// ReplaceAll swaps the whole transcript, used when a past session is loaded.
	ReplaceAll(msgs []model.Message) error
	// Reset empties the transcript and seeds it with the welcome turn.
	Reset(welcome model.Message) error
	// List returns a copy of the transcript in insertion order.
	List() []model.Message
	Len() int
}
