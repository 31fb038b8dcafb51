package compliance

import (
	"context"

	"arkive-client/internal/model"
)

// UseCase drives the compliance check workflow for one owner.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// SelectFile picks the policy to check. Only PDFs are accepted; no request is made.
	SelectFile(file model.File) error
	// Check submits the selected file. Failures keep the previous report and selection.
	Check(ctx context.Context) (Scorecard, error)
	// Reset clears the selection, the report and the error.
	Reset() error
	Snapshot() Snapshot
	Catalogue() Catalogue
	// Wait blocks until background event publishing finishes.
	Wait()
}
