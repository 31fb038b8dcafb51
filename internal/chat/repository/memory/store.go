package memory

import (
	"fmt"

	"arkive-client/internal/chat/repository"
	"arkive-client/internal/model"
)

func (s *implStore) Append(msg model.Message) error {
	if !msg.Role.IsValid() {
		return fmt.Errorf("%w: %q", repository.ErrInvalidRole, msg.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg.Clone())
	return nil
}

func (s *implStore) ReplaceAll(msgs []model.Message) error {
	next := make([]model.Message, 0, len(msgs))
	for i, m := range msgs {
		if !m.Role.IsValid() {
			return fmt.Errorf("%w: %q at %d", repository.ErrInvalidRole, m.Role, i)
		}
		next = append(next, m.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = next
	return nil
}

func (s *implStore) Reset(welcome model.Message) error {
	return s.ReplaceAll([]model.Message{welcome})
}

func (s *implStore) List() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, len(s.msgs))
	for i, m := range s.msgs {
		out[i] = m.Clone()
	}
	return out
}

func (s *implStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.msgs)
}
