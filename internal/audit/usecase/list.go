package usecase

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"

	"arkive-client/internal/audit"
	"arkive-client/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, limit int) []model.AuditLog {
	limit = normalizeLimit(limit)
	key := "audit:" + strconv.Itoa(limit)

	if x, found := uc.cache.Get(key); found {
		return cloneLogs(x.([]model.AuditLog))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	logs, err := uc.backend.ListAuditLogs(ctx, limit)
	if err != nil {
		uc.l.Warnf(ctx, "audit.usecase.List: ListAuditLogs failed: %v", err)
		return []model.AuditLog{}
	}

	uc.cache.Set(key, logs, cache.DefaultExpiration)
	return cloneLogs(logs)
}

func (uc *implUseCase) Summarize(logs []model.AuditLog) audit.Summary {
	s := audit.Summary{
		Total:  len(logs),
		Counts: make(map[model.AuditCategory]int, 4),
	}
	for _, l := range logs {
		s.Counts[l.Category()]++
	}
	return s
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return audit.DefaultLimit
	case limit > audit.MaxLimit:
		return audit.MaxLimit
	default:
		return limit
	}
}

func cloneLogs(in []model.AuditLog) []model.AuditLog {
	out := make([]model.AuditLog, len(in))
	copy(out, in)
	return out
}
