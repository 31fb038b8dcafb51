package document

import (
	"context"

	"arkive-client/internal/model"
)

// UseCase lists the knowledge-base documents.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// List returns the documents, served from a short-lived cache. Failures degrade to empty.
	List(ctx context.Context) []model.Document
	// Invalidate drops the cached listing, e.g. after an upload.
	Invalidate()
}
