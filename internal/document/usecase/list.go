package usecase

import (
	"context"

	"github.com/patrickmn/go-cache"

	"arkive-client/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) []model.Document {
	if x, found := uc.cache.Get(cacheKeyDocuments); found {
		return cloneDocuments(x.([]model.Document))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	docs, err := uc.backend.ListDocuments(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "document.usecase.List: ListDocuments failed: %v", err)
		return []model.Document{}
	}

	uc.cache.Set(cacheKeyDocuments, docs, cache.DefaultExpiration)
	return cloneDocuments(docs)
}

func (uc *implUseCase) Invalidate() {
	uc.cache.Delete(cacheKeyDocuments)
}

func cloneDocuments(in []model.Document) []model.Document {
	out := make([]model.Document, len(in))
	copy(out, in)
	return out
}
