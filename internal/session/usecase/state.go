package usecase

import (
	"strings"

	"arkive-client/internal/model"
	"arkive-client/internal/session"
)

func (uc *implUseCase) State() model.SessionState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

func (uc *implUseCase) ID() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.id
}

func (uc *implUseCase) Bind(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return session.ErrEmptySessionID
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state == model.SessionBound {
		return session.ErrAlreadyBound
	}
	uc.state = model.SessionBound
	uc.id = id
	return nil
}

func (uc *implUseCase) Enter(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return session.ErrEmptySessionID
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = model.SessionBound
	uc.id = id
	return nil
}

func (uc *implUseCase) Unbind() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = model.SessionUnbound
	uc.id = ""
}
