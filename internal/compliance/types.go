package compliance

import (
	"fmt"
	"time"

	"arkive-client/internal/model"
)

const (
	DefaultTimeout = 180 * time.Second

	PillarCount = 8

	MimePDF = "application/pdf"

	MsgNotPDF      = "Please upload a PDF file."
	MsgCheckFailed = "Compliance check failed. Please try again."
)

// Tier is the overall verdict derived from the number of passing pillars.
type Tier string

const (
	TierCompliant    Tier = "Compliant"
	TierPartial      Tier = "Partial"
	TierNonCompliant Tier = "Non-Compliant"
)

// Tier thresholds on the pass count.
const (
	CompliantMinPass = 6
	PartialMinPass   = 4
)

// Catalogue is the versioned table of pillars checked by the backend.
type Catalogue struct {
	Version int            `mapstructure:"version"`
	Pillars []model.Pillar `mapstructure:"pillars"`
}

// Row is one pillar line of a scorecard.
type Row struct {
	Pillar model.Pillar
	Status model.PillarStatus
	Note   string
}

// Gap is one numbered remediation item.
type Gap struct {
	Number int
	Text   string
}

// Scorecard is a report scored against the catalogue.
type Scorecard struct {
	FileName  string
	Rows      []Row
	PassCount int
	Total     int
	Tier      Tier
	Gaps      []Gap
}

// Score renders the pass count as "P/N".
func (s Scorecard) Score() string {
	return fmt.Sprintf("%d/%d", s.PassCount, s.Total)
}

// Snapshot is the workflow state exposed to views.
type Snapshot struct {
	FileName  string
	Scorecard *Scorecard
	Error     string
	Checking  bool
}

// Config configures the workflow.
type Config struct {
	OwnerID string
	Timeout time.Duration
}
