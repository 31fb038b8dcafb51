package usecase

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"arkive-client/internal/activity"
	"arkive-client/internal/chat"
	"arkive-client/internal/chat/repository"
	"arkive-client/internal/model"
	"arkive-client/internal/session"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

type implUseCase struct {
	cfg       chat.Config
	store     repository.MessageStore
	sessionUC session.UseCase
	backend   backend.IBackend
	events    activity.Publisher
	l         log.Logger
	now       func() time.Time

	// lane holds at most one token: the in-flight chat call or a session switch.
	lane      chan struct{}
	sending   atomic.Bool
	uploading atomic.Int32

	// genMu orders transcript replacement against late upload notices.
	// generation is bumped each time NewChat or LoadSession replaces the transcript.
	genMu      sync.Mutex
	generation uint64

	wg sync.WaitGroup
}

// New - Factory function. The transcript is seeded with the welcome turn.
func New(
	cfg chat.Config,
	store repository.MessageStore,
	sessionUC session.UseCase,
	be backend.IBackend,
	events activity.Publisher,
	l log.Logger,
) (chat.UseCase, error) {
	cfg.OwnerID = strings.TrimSpace(cfg.OwnerID)
	if cfg.OwnerID == "" {
		return nil, chat.ErrOwnerRequired
	}
	if cfg.WelcomeMessage == "" {
		cfg.WelcomeMessage = chat.DefaultWelcomeMessage
	}
	if cfg.ChatTimeout <= 0 {
		cfg.ChatTimeout = chat.DefaultChatTimeout
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = chat.DefaultUploadTimeout
	}
	if events == nil {
		events = activity.NewNop()
	}

	uc := &implUseCase{
		cfg:       cfg,
		store:     store,
		sessionUC: sessionUC,
		backend:   be,
		events:    events,
		l:         l,
		now:       time.Now,
		lane:      make(chan struct{}, 1),
	}
	if err := store.Reset(model.NewAssistantNotice(cfg.WelcomeMessage, uc.now())); err != nil {
		return nil, err
	}
	return uc, nil
}
