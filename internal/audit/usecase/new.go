package usecase

import (
	"time"

	"github.com/patrickmn/go-cache"

	"arkive-client/internal/audit"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

type implUseCase struct {
	cfg     audit.Config
	backend backend.IBackend
	cache   *cache.Cache
	l       log.Logger
}

// New - Factory function
func New(cfg audit.Config, be backend.IBackend, l log.Logger) audit.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = audit.DefaultCacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = audit.DefaultTimeout
	}
	return &implUseCase{
		cfg:     cfg,
		backend: be,
		cache:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL+time.Second),
		l:       l,
	}
}
