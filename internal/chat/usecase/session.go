package usecase

import (
	"context"
	"fmt"

	"arkive-client/internal/chat"
	"arkive-client/internal/model"
)

// LoadSession waits for the chat lane so a switch never interleaves with an
// outstanding query. On failure the transcript and binding are left untouched.
func (uc *implUseCase) LoadSession(ctx context.Context, sessionID string) error {
	if err := uc.acquireLane(ctx); err != nil {
		return err
	}
	defer func() { <-uc.lane }()

	msgs, err := uc.sessionUC.Fetch(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("%w: %v", chat.ErrLoadSession, err)
	}

	if err := uc.replaceTranscript(func() error { return uc.store.ReplaceAll(msgs) }); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.LoadSession: ReplaceAll failed: %v", err)
		return fmt.Errorf("%w: %v", chat.ErrLoadSession, err)
	}
	if err := uc.sessionUC.Enter(sessionID); err != nil {
		return err
	}

	uc.l.Infof(ctx, "chat.usecase.LoadSession: loaded session %s with %d messages", sessionID, len(msgs))
	return nil
}

// NewChat starts over with a fresh, unbound conversation.
func (uc *implUseCase) NewChat(ctx context.Context) error {
	if err := uc.acquireLane(ctx); err != nil {
		return err
	}
	defer func() { <-uc.lane }()

	uc.sessionUC.Unbind()
	return uc.replaceTranscript(func() error {
		return uc.store.Reset(model.NewAssistantNotice(uc.cfg.WelcomeMessage, uc.now()))
	})
}

func (uc *implUseCase) ListSessions(ctx context.Context) []model.SessionEntry {
	return uc.sessionUC.List(ctx, uc.cfg.OwnerID)
}

func (uc *implUseCase) Conversation() model.Conversation {
	return model.Conversation{
		ID:       uc.sessionUC.ID(),
		OwnerID:  uc.cfg.OwnerID,
		State:    uc.sessionUC.State(),
		Messages: uc.store.List(),
	}
}

func (uc *implUseCase) Status() chat.Status {
	return chat.Status{
		Sending:   uc.sending.Load(),
		Uploading: uc.uploading.Load() > 0,
	}
}

func (uc *implUseCase) Wait() {
	uc.wg.Wait()
	uc.sessionUC.Wait()
}
