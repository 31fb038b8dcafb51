package memory

import (
	"sync"

	"arkive-client/internal/chat/repository"
	"arkive-client/internal/model"
)

type implStore struct {
	mu   sync.RWMutex
	msgs []model.Message
}

// New returns an empty in-memory MessageStore.
func New() repository.MessageStore {
	return &implStore{}
}
