package usecase

import (
	"time"

	"github.com/patrickmn/go-cache"

	"arkive-client/internal/document"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/log"
)

const cacheKeyDocuments = "documents"

type implUseCase struct {
	cfg     document.Config
	backend backend.IBackend
	cache   *cache.Cache
	l       log.Logger
}

// New - Factory function
func New(cfg document.Config, be backend.IBackend, l log.Logger) document.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = document.DefaultCacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = document.DefaultTimeout
	}
	return &implUseCase{
		cfg:     cfg,
		backend: be,
		cache:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL+time.Second),
		l:       l,
	}
}
