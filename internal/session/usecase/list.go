package usecase

import (
	"context"
	"fmt"

	"arkive-client/internal/model"
	"arkive-client/internal/session"
)

func (uc *implUseCase) List(ctx context.Context, ownerID string) []model.SessionEntry {
	uc.mu.Lock()
	uc.seq++
	seq := uc.seq
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entries, err := uc.backend.ListSessions(ctx, ownerID)
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.List: ListSessions failed: %v", err)
		entries = []model.SessionEntry{}
	}

	uc.mu.Lock()
	if seq > uc.storedSeq {
		uc.storedSeq = seq
		uc.entries = entries
	}
	uc.mu.Unlock()

	out := make([]model.SessionEntry, len(entries))
	copy(out, entries)
	return out
}

func (uc *implUseCase) Refresh(ctx context.Context, ownerID string) {
	ctx = context.WithoutCancel(ctx)
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		entries := uc.List(ctx, ownerID)
		uc.l.Debugf(ctx, "session.usecase.Refresh: %d sessions for %s", len(entries), ownerID)
	}()
}

func (uc *implUseCase) Fetch(ctx context.Context, id string) ([]model.Message, error) {
	if id == "" {
		return nil, session.ErrEmptySessionID
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	msgs, err := uc.backend.GetHistory(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.Fetch: GetHistory failed: %v", err)
		return nil, fmt.Errorf("fetch session %s: %w", id, err)
	}
	return msgs, nil
}

func (uc *implUseCase) Entries() []model.SessionEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.SessionEntry, len(uc.entries))
	copy(out, uc.entries)
	return out
}

func (uc *implUseCase) Wait() {
	uc.wg.Wait()
}
