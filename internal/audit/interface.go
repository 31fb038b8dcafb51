package audit

import (
	"context"

	"arkive-client/internal/model"
)

// UseCase reads recent backend audit records.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// List returns up to limit records, newest first. Failures degrade to empty.
	List(ctx context.Context, limit int) []model.AuditLog
	// Summarize counts records per display category.
	Summarize(logs []model.AuditLog) Summary
}
