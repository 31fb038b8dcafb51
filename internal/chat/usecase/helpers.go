package usecase

import (
	"context"

	"arkive-client/internal/activity"
	"arkive-client/internal/model"
)

func (uc *implUseCase) acquireLane(ctx context.Context) error {
	select {
	case uc.lane <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *implUseCase) currentGeneration() uint64 {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()
	return uc.generation
}

// replaceTranscript runs replace and starts a new generation when it succeeds.
func (uc *implUseCase) replaceTranscript(replace func() error) error {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()

	if err := replace(); err != nil {
		return err
	}
	uc.generation++
	return nil
}

// appendIfCurrent appends msg only while the transcript is still the one of generation gen.
func (uc *implUseCase) appendIfCurrent(gen uint64, msg model.Message) (bool, error) {
	uc.genMu.Lock()
	defer uc.genMu.Unlock()

	if uc.generation != gen {
		return false, nil
	}
	return true, uc.store.Append(msg)
}

// publish emits an activity event off the caller's path. Failures are only logged.
func (uc *implUseCase) publish(ctx context.Context, typ activity.EventType, sessionID string, attrs map[string]any) {
	event := activity.Event{
		Type:       typ,
		OwnerID:    uc.cfg.OwnerID,
		SessionID:  sessionID,
		Attributes: attrs,
		OccurredAt: uc.now(),
	}
	ctx = context.WithoutCancel(ctx)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		if err := uc.events.Publish(ctx, event); err != nil {
			uc.l.Warnf(ctx, "chat.usecase.publish: %s: %v", typ, err)
		}
	}()
}
