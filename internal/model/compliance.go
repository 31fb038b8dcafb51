package model

// PillarStatus is the per-pillar verdict returned by the backend.
type PillarStatus string

const (
	PillarPass PillarStatus = "pass"
	PillarFail PillarStatus = "fail"
)

// Pillar is one entry of the compliance catalogue.
type Pillar struct {
	Key       string `mapstructure:"key"`
	Label     string `mapstructure:"label"`
	Reference string `mapstructure:"reference"`
	Question  string `mapstructure:"question"`
}

// PillarResult is the backend verdict for a single pillar.
type PillarResult struct {
	Status PillarStatus
	Note   string
}

// ComplianceReport is the backend response to a compliance check.
// It is replaced wholesale by each new check.
type ComplianceReport struct {
	FileName string
	Results  map[string]PillarResult
	Gaps     []string
}
