package usecase

import (
	"context"
	"errors"
	"strings"

	"arkive-client/internal/activity"
	"arkive-client/internal/chat"
	"arkive-client/internal/model"
	"arkive-client/internal/session"
	"arkive-client/pkg/backend"
)

// SendQuery runs one chat turn.
// Flow: validate → take lane → append user turn → call backend → append assistant turn → bind
func (uc *implUseCase) SendQuery(ctx context.Context, text string) (model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, chat.ErrEmptyQuery
	}

	select {
	case uc.lane <- struct{}{}:
	default:
		return model.Message{}, chat.ErrChatInFlight
	}
	defer func() { <-uc.lane }()

	uc.sending.Store(true)
	defer uc.sending.Store(false)

	if err := uc.appendUserTurn(text); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendQuery: appendUserTurn failed: %v", err)
		return model.Message{}, err
	}

	sessionID := ""
	if uc.sessionUC.State() == model.SessionBound {
		sessionID = uc.sessionUC.ID()
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ChatTimeout)
	resp, callErr := uc.backend.Chat(callCtx, backend.ChatRequest{
		Query:     text,
		UserID:    uc.cfg.OwnerID,
		SessionID: sessionID,
	})
	cancel()

	reply, err := uc.appendAssistantTurn(resp, callErr)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendQuery: appendAssistantTurn failed: %v", err)
		return model.Message{}, err
	}

	if callErr != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendQuery: Chat failed: %v", callErr)
		uc.publish(ctx, activity.EventChatFailed, sessionID, nil)
		return reply, nil
	}

	if sessionID == "" && resp.SessionID != "" {
		uc.bindNewSession(ctx, resp.SessionID)
		sessionID = uc.sessionUC.ID()
	}
	uc.publish(ctx, activity.EventChatAnswered, sessionID, map[string]any{
		"confidence": reply.Confidence,
		"flagged":    reply.Flagged,
		"sources":    len(reply.Sources),
	})
	return reply, nil
}

// appendUserTurn is phase one: the user turn is visible before the call resolves.
func (uc *implUseCase) appendUserTurn(text string) error {
	return uc.store.Append(model.NewUserMessage(text, uc.now()))
}

// appendAssistantTurn is phase two: exactly one assistant turn per settled call.
func (uc *implUseCase) appendAssistantTurn(resp backend.ChatResponse, callErr error) (model.Message, error) {
	var msg model.Message
	if callErr != nil {
		msg = model.NewFailureMessage(chat.MsgChatFailed, uc.now())
	} else {
		msg = model.NewAssistantNotice(resp.Answer, uc.now())
		if len(resp.Sources) > 0 {
			msg.Sources = append(msg.Sources, resp.Sources...)
		}
		msg.Confidence = resp.Confidence
		msg.Flagged = resp.Flagged
	}
	if err := uc.store.Append(msg); err != nil {
		return model.Message{}, err
	}
	return msg, nil
}

func (uc *implUseCase) bindNewSession(ctx context.Context, id string) {
	if err := uc.sessionUC.Bind(id); err != nil {
		if errors.Is(err, session.ErrAlreadyBound) {
			uc.l.Warnf(ctx, "chat.usecase.bindNewSession: ignoring session id %s: %v", id, err)
			return
		}
		uc.l.Errorf(ctx, "chat.usecase.bindNewSession: Bind failed: %v", err)
		return
	}
	uc.publish(ctx, activity.EventSessionBound, id, nil)
	uc.sessionUC.Refresh(ctx, uc.cfg.OwnerID)
}
