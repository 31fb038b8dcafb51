package usecase

import (
	"sync"

	"arkive-client/internal/activity"
	"arkive-client/internal/compliance"
	"arkive-client/internal/model"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

type implUseCase struct {
	cfg       compliance.Config
	catalogue compliance.Catalogue
	backend   backend.IBackend
	events    activity.Publisher
	l         log.Logger

	// mu guards the selection and the checking flag together, so a check always
	// reports on the file that was selected when it started.
	mu       sync.RWMutex
	checking bool
	file     *model.File
	report   *compliance.Scorecard
	errMsg   string

	wg sync.WaitGroup
}

// New - Factory function
func New(
	cfg compliance.Config,
	catalogue compliance.Catalogue,
	be backend.IBackend,
	events activity.Publisher,
	l log.Logger,
) (compliance.UseCase, error) {
	if err := catalogue.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = compliance.DefaultTimeout
	}
	if events == nil {
		events = activity.NewNop()
	}
	return &implUseCase{
		cfg:       cfg,
		catalogue: catalogue,
		backend:   be,
		events:    events,
		l:         l,
	}, nil
}
