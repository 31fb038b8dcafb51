package usecase

import (
	"sync"
	"time"

	"arkive-client/internal/model"
	"arkive-client/internal/session"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

type implUseCase struct {
	backend backend.IBackend
	l       log.Logger
	timeout time.Duration

	mu    sync.RWMutex
	state model.SessionState
	id    string

	// seq orders list results so an older response never overwrites a newer one.
	seq       uint64
	storedSeq uint64
	entries   []model.SessionEntry

	wg sync.WaitGroup
}

// New - Factory function
func New(cfg session.Config, be backend.IBackend, l log.Logger) session.UseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = session.DefaultTimeout
	}
	return &implUseCase{
		backend: be,
		l:       l,
		timeout: cfg.Timeout,
		state:   model.SessionUnbound,
		entries: []model.SessionEntry{},
	}
}
